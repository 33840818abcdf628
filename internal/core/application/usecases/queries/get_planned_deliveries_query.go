package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/pkg/guard"
)

var ErrGetPlannedDeliveriesQueryIsNotConstructed = errors.New(
	"GetPlannedDeliveriesQuery must be created via NewGetPlannedDeliveriesQuery constructor",
)

// GetPlannedDeliveriesQuery retrieves all deliveries that have been planned.
// Returns deliveries in "planned" status together with their transport instructions.
//
// Example:
//
//	query := NewGetPlannedDeliveriesQuery()
//	handler := NewGetPlannedDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get planned deliveries: %w", err)
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("%s: %s\n", d.Street, d.Instructions)
//	}
type GetPlannedDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlannedDeliveriesQuery creates a query to retrieve planned deliveries.
// This is a parameterless query that fetches all planned deliveries.
func NewGetPlannedDeliveriesQuery() GetPlannedDeliveriesQuery {
	return GetPlannedDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlannedDeliveriesQueryIsNotConstructed if validation fails.
func (q GetPlannedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPlannedDeliveriesQueryIsNotConstructed)
}

// GetPlannedDeliveriesQueryResponse represents planned delivery information.
// Contains the destination, the logistics variant, and the transport instructions.
type GetPlannedDeliveriesQueryResponse struct {
	ID           kernel.UUID
	Street       string
	Kind         logistics.Kind
	Instructions string
}
