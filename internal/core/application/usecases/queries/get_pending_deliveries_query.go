// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read directly from the database
// for optimal performance, returning lightweight read models.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves all deliveries waiting to be planned.
// Returns deliveries in "requested" status for monitoring and management.
//
// Example:
//
//	query := NewGetPendingDeliveriesQuery()
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending deliveries: %w", err)
//	}
//
//	fmt.Printf("Found %d deliveries awaiting planning\n", len(deliveries))
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query to retrieve pending deliveries.
// This is a parameterless query that fetches all requested deliveries.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingDeliveriesQueryIsNotConstructed if validation fails.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// GetPendingDeliveriesQueryResponse represents pending delivery information.
// Contains the destination and the logistics variant that will plan the delivery.
type GetPendingDeliveriesQueryResponse struct {
	ID     kernel.UUID
	Street string
	Kind   logistics.Kind
}
