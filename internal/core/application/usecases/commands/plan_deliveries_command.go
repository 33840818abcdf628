package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrPlanDeliveriesCommandIsNotConstructed = errors.New(
	"PlanDeliveriesCommand must be created via NewPlanDeliveriesCommand constructor",
)

// PlanDeliveriesCommand triggers planning of all requested deliveries.
// This is a parameterless command, typically issued by the scheduled
// planning job.
type PlanDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewPlanDeliveriesCommand creates a command to plan pending deliveries.
func NewPlanDeliveriesCommand() PlanDeliveriesCommand {
	return PlanDeliveriesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlanDeliveriesCommandIsNotConstructed if validation fails.
func (c PlanDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrPlanDeliveriesCommandIsNotConstructed)
}
