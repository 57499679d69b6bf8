package profilerepo

import (
	"context"
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/profile"
	"parcelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new profile to the database. A duplicate id or email maps to
// a conflict error.
func (r *GormProfileRepository) Add(ctx context.Context, aggregate *profile.UserProfile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("profile " + aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing profile to the database.
func (r *GormProfileRepository) Update(ctx context.Context, aggregate *profile.UserProfile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProfileDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("profile", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a profile by ID.
func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.UserProfile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAvailableRiders retrieves all active rider-capable profiles that marked
// themselves available.
func (r *GormProfileRepository) GetAvailableRiders(ctx context.Context) ([]*profile.UserProfile, error) {
	var dtos []ProfileDTO
	err := r.db.WithContext(ctx).
		Where("user_type IN ? AND status = ? AND is_available", riderCapableTypes(), profile.StatusActive.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	riders := make([]*profile.UserProfile, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, p)
	}

	return riders, nil
}

func riderCapableTypes() []string {
	return []string{
		profile.UserTypeRider.String(),
		profile.UserTypeBoth.String(),
	}
}
