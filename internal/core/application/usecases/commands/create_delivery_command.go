package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrStreetIsRequired = errors.New("street is required")
)

// CreateDeliveryCommand represents a request to register a new delivery.
// Encapsulates the destination street and the logistics variant that will
// plan the delivery.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, "221B Baker Street", logistics.Road)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
//	fmt.Printf("Delivery %s registered and awaiting planning", deliveryID)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	street     string
	kind       logistics.Kind

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery request.
// Validates that the delivery ID is valid, the street is not empty, and the
// logistics kind names an existing variant. Returns an error if any validation fails.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	street string,
	kind logistics.Kind,
) (CreateDeliveryCommand, error) {
	deliveryCommand := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setDeliveryID(deliveryID),
		deliveryCommand.setStreet(street),
		deliveryCommand.setKind(kind),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Street returns the delivery destination street address.
func (c CreateDeliveryCommand) Street() string {
	return c.street
}

// Kind returns the logistics variant selected for the delivery.
func (c CreateDeliveryCommand) Kind() logistics.Kind {
	return c.kind
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}

func (c *CreateDeliveryCommand) setKind(kind logistics.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
