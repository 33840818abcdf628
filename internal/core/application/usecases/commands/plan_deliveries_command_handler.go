package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// PlanDeliveriesCommandHandler orchestrates planning of all requested deliveries.
// Retrieves every delivery in "requested" status, runs the delivery planner on
// each, and persists the resulting transport instructions.
//
// Example:
//
//	handler := NewPlanDeliveriesCommandHandler(uowFactory, services.NewDeliveryPlanner())
//	cmd := NewPlanDeliveriesCommand()
//
//	// Execute a planning pass
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery planning failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type PlanDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	planner    services.DeliveryPlanner
}

// NewPlanDeliveriesCommandHandler creates a handler for delivery planning operations.
// Requires a DeliveryUoWFactory for transactional persistence and the domain planner.
func NewPlanDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	planner services.DeliveryPlanner,
) PlanDeliveriesCommandHandler {
	return PlanDeliveriesCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
	}
}

// Handle processes the delivery planning command.
// Retrieves all deliveries in "requested" status, plans each one, and updates
// them with their transport instructions. All updates occur within a single transaction.
func (h *PlanDeliveriesCommandHandler) Handle(ctx context.Context, cmd PlanDeliveriesCommand) error {
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

	deliveries, err := deliveryRepo.GetAllInRequestedStatus(ctx)
	if err != nil {
		return err
	}

	for _, d := range deliveries {
		if err = h.planner.Plan(d); err != nil {
			return err
		}

		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
