package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. Update enforces optimistic concurrency: it matches on the
// aggregate's loaded version and fails with a conflict error when another
// writer got there first.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate together with its pending
	// status history entries.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery, bumping its
	// version. Pending status history entries are appended in the same
	// transaction.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByTrackingNumber retrieves a delivery by its public tracking
	// number. Used by the unauthenticated tracking endpoint.
	GetByTrackingNumber(ctx context.Context, trackingNumber delivery.TrackingNumber) (*delivery.Delivery, error)

	// GetAllInStatus retrieves all deliveries currently in the given
	// status. Used by the dispatch and auto-assignment sweeps.
	GetAllInStatus(ctx context.Context, status delivery.Status) ([]*delivery.Delivery, error)

	// CountActiveByRider returns the number of non-terminal deliveries
	// bound to the rider. Used for load-based assignment.
	CountActiveByRider(ctx context.Context, riderID kernel.UUID) (int, error)
}
