package services

import (
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/logistics"
)

// DeliveryPlanner is a domain service responsible for planning delivery requests.
// It resolves the logistics creator variant selected by the delivery, runs the
// shared planning algorithm, and records the resulting transport instructions
// on the aggregate.
//
// Business rules:
//   - Deliveries must be valid and in Requested status before planning
//   - The creator variant is selected by the delivery's kind
//   - The recorded instructions are the created transport's delivery
//     description, unchanged
//
// Example usage:
//
//	planner := services.NewDeliveryPlanner()
//	d, _ := delivery.NewDelivery(id, "221B Baker Street", logistics.Road)
//
//	if err := planner.Plan(d); err != nil {
//	    // Handle planning failure
//	}
//	fmt.Println(d.Instructions()) // Output: Delivering by land in a box
type DeliveryPlanner struct{}

// NewDeliveryPlanner creates a new DeliveryPlanner instance.
func NewDeliveryPlanner() DeliveryPlanner {
	return DeliveryPlanner{}
}

// Plan plans a single delivery request.
//
// Parameters:
//   - d: The delivery to plan (must be valid and in Requested status)
//
// Returns:
//   - error: validation error, unknown-kind error, or status transition error
//
// Planning algorithm:
//   - Validates the delivery
//   - Resolves the creator variant for the delivery's kind
//   - Creates the transport through the variant's factory operation and
//     takes its delivery description
//   - Transitions the delivery to Planned with those instructions
func (p DeliveryPlanner) Plan(d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := d.Status().ValidatePlan(); err != nil {
		return err
	}

	l, err := logistics.New(d.Kind())
	if err != nil {
		return err
	}

	instructions, err := logistics.PlanDelivery(l)
	if err != nil {
		return err
	}

	return d.Plan(instructions)
}
