package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for user profile
// aggregates.
type ProfileRepository interface {
	// Add persists a new profile aggregate to storage.
	Add(ctx context.Context, aggregate *profile.UserProfile) error

	// Update persists changes to an existing profile aggregate.
	Update(ctx context.Context, aggregate *profile.UserProfile) error

	// Get retrieves a profile aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*profile.UserProfile, error)

	// GetAvailableRiders retrieves all active rider-capable profiles that
	// marked themselves available. Used by the auto-assignment sweep.
	GetAvailableRiders(ctx context.Context) ([]*profile.UserProfile, error)
}
