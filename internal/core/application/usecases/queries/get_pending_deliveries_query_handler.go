package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingDeliveriesQueryHandler retrieves pending delivery information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//	query := NewGetPendingDeliveriesQuery()
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending deliveries: %v", err)
//	    return err
//	}
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for pending delivery queries.
// Requires a GORM database connection for query execution.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending deliveries.
// Returns a slice of delivery read models sorted by street.
// Converts database types to domain types for consistency.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetPendingDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			street,
			kind
		FROM deliveries
		WHERE status = ?
		ORDER BY street
	`, delivery.Requested).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pending GetPendingDeliveriesQueryResponse
		var id uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&pending.Street,
			&kind,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pending.ID = deliveryID

		deliveryKind := logistics.Kind(kind)
		if kindErr := deliveryKind.Validate(); kindErr != nil {
			return nil, kindErr
		}
		pending.Kind = deliveryKind
		deliveries = append(deliveries, pending)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
