package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying delivery requests
// based on their lifecycle status.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns the complete delivery with its current status and instructions.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllInRequestedStatus retrieves all deliveries waiting to be planned.
	// Used by the planning workflow to find pending requests.
	GetAllInRequestedStatus(ctx context.Context) ([]*delivery.Delivery, error)
}
