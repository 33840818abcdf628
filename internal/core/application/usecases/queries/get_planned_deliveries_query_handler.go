package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPlannedDeliveriesQueryHandler retrieves planned delivery information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPlannedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPlannedDeliveriesQueryHandler creates a handler for planned delivery queries.
// Requires a GORM database connection for query execution.
func NewGetPlannedDeliveriesQueryHandler(db *gorm.DB) GetPlannedDeliveriesQueryHandler {
	return GetPlannedDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all planned deliveries.
// Returns a slice of delivery read models sorted by street.
// Converts database types to domain types for consistency.
func (h GetPlannedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPlannedDeliveriesQuery,
) ([]GetPlannedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetPlannedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			street,
			kind,
			instructions
		FROM deliveries
		WHERE status = ?
		ORDER BY street
	`, delivery.Planned).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var planned GetPlannedDeliveriesQueryResponse
		var id uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&planned.Street,
			&kind,
			&planned.Instructions,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		planned.ID = deliveryID

		deliveryKind := logistics.Kind(kind)
		if kindErr := deliveryKind.Validate(); kindErr != nil {
			return nil, kindErr
		}
		planned.Kind = deliveryKind
		deliveries = append(deliveries, planned)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
