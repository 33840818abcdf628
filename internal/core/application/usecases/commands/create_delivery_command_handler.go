package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery registration.
// Creates new delivery requests in "requested" status, waiting for the planning
// workflow to produce transport instructions.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	deliveryID := kernel.NewUUID()
//	cmd, _ := NewCreateDeliveryCommand(deliveryID, "221B Baker Street", logistics.Road)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery registration failed: %w", err)
//	}
//	// Delivery is now registered and ready for planning
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery registration command.
// Creates the delivery in "requested" status with the selected logistics variant.
// Uses a transaction to ensure the delivery is properly persisted or rolled back on error.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.Street(), cmd.Kind())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
