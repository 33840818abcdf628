package transport

import (
	"errors"

	"logistics/internal/pkg/guard"
)

// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

// truckDeliveryDescription is the fixed delivery description for road transport.
const truckDeliveryDescription = "Delivering by land in a box"

// Truck is the road transport variant.
// It is an immutable, stateless value object; the zero value is invalid
// and must be created through NewTruck.
//
// Example:
//
//	truck := transport.NewTruck()
//	fmt.Println(truck.Deliver()) // Output: Delivering by land in a box
type Truck struct {
	guard guard.ConstructorGuard
}

// NewTruck creates a new Truck ready for delivery planning.
func NewTruck() Truck {
	return Truck{
		guard: guard.NewConstructorGuard(),
	}
}

// Name returns the variant name "Truck".
func (t Truck) Name() string {
	return "Truck"
}

// Deliver returns the fixed description of a road delivery.
// The result is deterministic: every call on every Truck instance
// returns the same description.
func (t Truck) Deliver() string {
	return truckDeliveryDescription
}

// Validate checks if the Truck was properly constructed using NewTruck.
// The zero value of Truck is invalid and will fail this validation.
func (t Truck) Validate() error {
	return t.guard.Validate(ErrTruckIsNotConstructed)
}
