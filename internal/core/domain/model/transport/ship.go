package transport

import (
	"errors"

	"logistics/internal/pkg/guard"
)

// ErrShipIsNotConstructed is returned when using an improperly initialized Ship.
var ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip constructor")

// shipDeliveryDescription is the fixed delivery description for sea transport.
const shipDeliveryDescription = "Delivering by sea in a container"

// Ship is the sea transport variant.
// It is an immutable, stateless value object; the zero value is invalid
// and must be created through NewShip.
//
// Example:
//
//	ship := transport.NewShip()
//	fmt.Println(ship.Deliver()) // Output: Delivering by sea in a container
type Ship struct {
	guard guard.ConstructorGuard
}

// NewShip creates a new Ship ready for delivery planning.
func NewShip() Ship {
	return Ship{
		guard: guard.NewConstructorGuard(),
	}
}

// Name returns the variant name "Ship".
func (s Ship) Name() string {
	return "Ship"
}

// Deliver returns the fixed description of a sea delivery.
// The result is deterministic: every call on every Ship instance
// returns the same description.
func (s Ship) Deliver() string {
	return shipDeliveryDescription
}

// Validate checks if the Ship was properly constructed using NewShip.
// The zero value of Ship is invalid and will fail this validation.
func (s Ship) Validate() error {
	return s.guard.Validate(ErrShipIsNotConstructed)
}
