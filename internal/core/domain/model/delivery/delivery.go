package delivery

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
	// through the NewDelivery constructor. This ensures all deliveries are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrStreetIsRequired is returned when attempting to create a delivery without a street.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")

	// ErrInstructionsAreRequired is returned when planning a delivery without instructions.
	ErrInstructionsAreRequired = errs.NewValueIsRequiredError("instructions")
)

// Delivery represents a delivery request in the system. It is the aggregate root
// that manages the request lifecycle from registration through planning.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty destination street
//   - Must carry a valid logistics kind selecting the creator variant
//   - Status transitions follow defined business rules
//   - Instructions are set exactly once, when the delivery is planned
//   - Can only be created through the NewDelivery constructor
//
// The Delivery struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// street is the destination street address
	street string

	// kind selects the logistics creator variant used to plan this delivery
	kind logistics.Kind

	// status represents the current state in the delivery lifecycle
	status Status

	// instructions is the transport description produced by planning
	// (empty until the delivery is planned)
	instructions string

	// isConstructed ensures the delivery was created via NewDelivery
	isConstructed bool
}

// NewDelivery creates a new Delivery instance with validation. This is the only way
// to create a valid Delivery, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the delivery (must be valid UUID)
//   - street: Destination street address (must be non-empty)
//   - kind: Logistics creator variant to plan with (must be valid)
//
// Returns:
//   - *Delivery: The created delivery if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	d, err := NewDelivery(deliveryID, "221B Baker Street", logistics.Road)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the delivery is created
// in Requested status with no instructions.
func NewDelivery(id kernel.UUID, street string, kind logistics.Kind) (*Delivery, error) {
	d := &Delivery{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setStreet(street),
		d.setKind(kind),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery which registers fresh requests, this constructor restores
// a delivery to its previously persisted state, including status and instructions.
//
// Parameters:
//   - id: Unique identifier for the delivery
//   - street: Destination street address
//   - kind: Logistics creator variant
//   - status: Persisted lifecycle status
//   - instructions: Persisted transport instructions (empty for Requested deliveries)
//
// Returns:
//   - *Delivery: Restored delivery aggregate
//   - error: Validation error if any parameter is invalid or the status and
//     instructions are inconsistent
func RestoreDelivery(
	id kernel.UUID,
	street string,
	kind logistics.Kind,
	status Status,
	instructions string,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setStreet(street),
		d.setKind(kind),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveInstructions(instructions != ""); err != nil {
		return nil, err
	}
	d.instructions = instructions

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through NewDelivery.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the delivery is valid
//   - ErrDeliveryIsNotConstructed if the delivery was not created via NewDelivery
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
// Deliveries are considered equal if they have the same ID.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Street returns the destination street address.
func (d *Delivery) Street() string {
	return d.street
}

// Kind returns the logistics creator variant selected for this delivery.
func (d *Delivery) Kind() logistics.Kind {
	return d.kind
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Instructions returns the transport instructions produced by planning.
// Returns an empty string while the delivery is still Requested.
func (d *Delivery) Instructions() string {
	return d.instructions
}

// Plan records the transport instructions and transitions the delivery to Planned.
//
// This method enforces the following business rules:
//   - The instructions must be non-empty
//   - The delivery must be in Requested status
//   - Planned is a final state with no further transitions
//
// Parameters:
//   - instructions: The transport description produced by the planner
//
// Returns:
//   - nil on successful planning
//   - error if instructions are missing or the status transition is not allowed
//
// Example:
//
//	err := d.Plan("Delivering by land in a box")
//	if err != nil {
//	    // Delivery was not in Requested status
//	}
func (d *Delivery) Plan(instructions string) error {
	if instructions == "" {
		return ErrInstructionsAreRequired
	}

	newStatus, err := d.status.Plan()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.instructions = instructions
	return nil
}

// setID validates and sets the delivery's unique identifier.
// This is a private method used only during construction.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setStreet validates and sets the destination street address.
// This is a private method used only during construction.
func (d *Delivery) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	d.street = street
	return nil
}

// setKind validates and sets the logistics creator variant.
// This is a private method used only during construction.
func (d *Delivery) setKind(kind logistics.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
