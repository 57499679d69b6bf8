// Package profilerepo provides data transfer objects and mapping functions
// for user profile persistence. Rider attributes live in nullable columns on
// the same row; they are populated exactly when the user type includes the
// rider capability.
package profilerepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting user profile
// aggregates.
type ProfileDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string    `gorm:"type:varchar(32);not null"`
	Address        string    `gorm:"type:text"`
	UserType       string    `gorm:"type:varchar(16);not null;index"`
	Status         string    `gorm:"type:varchar(32);not null;index"`
	LicenseNumber  *string   `gorm:"type:varchar(64)"`
	LicenseExpiry  *time.Time
	VehicleType    *string `gorm:"type:varchar(32)"`
	VehiclePlate   *string `gorm:"type:varchar(32)"`
	VehicleModel   *string `gorm:"type:varchar(64)"`
	IdentityType   *string `gorm:"type:varchar(32)"`
	IdentityNumber *string `gorm:"type:varchar(64)"`
	IsAvailable    bool    `gorm:"not null;default:false"`
	Rating         float64 `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile domain aggregate to its database
// representation.
func fromDomain(p *profile.UserProfile) ProfileDTO {
	dto := ProfileDTO{
		ID:        p.ID().Bytes(),
		Name:      p.Name(),
		Email:     p.Email(),
		Phone:     p.Phone(),
		Address:   p.Address(),
		UserType:  p.UserType().String(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
	}

	if details := p.RiderDetails(); details != nil {
		licenseNumber := details.LicenseNumber()
		licenseExpiry := details.LicenseExpiry()
		vehicleType := details.VehicleType().String()
		vehiclePlate := details.VehiclePlate()
		vehicleModel := details.VehicleModel()
		identityType := details.IdentityType()
		identityNumber := details.IdentityNumber()

		dto.LicenseNumber = &licenseNumber
		dto.LicenseExpiry = &licenseExpiry
		dto.VehicleType = &vehicleType
		dto.VehiclePlate = &vehiclePlate
		dto.VehicleModel = &vehicleModel
		dto.IdentityType = &identityType
		dto.IdentityNumber = &identityNumber
		dto.IsAvailable = details.IsAvailable()
		dto.Rating = details.Rating()
	}

	return dto
}

// toDomain converts a database DTO to a profile domain aggregate.
// Reconstructs the complete aggregate using RestoreUserProfile.
func toDomain(dto ProfileDTO) (*profile.UserProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userType, err := profile.UserTypeFromString(dto.UserType)
	if err != nil {
		return nil, err
	}

	status, err := profile.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var riderDetails *profile.RiderDetails
	if userType.IncludesRider() {
		details, detailsErr := riderDetailsToDomain(dto)
		if detailsErr != nil {
			return nil, detailsErr
		}
		riderDetails = details
	}

	return profile.RestoreUserProfile(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Address,
		userType,
		status,
		riderDetails,
		dto.CreatedAt,
	)
}

func riderDetailsToDomain(dto ProfileDTO) (*profile.RiderDetails, error) {
	vehicleType, err := profile.VehicleTypeFromString(stringOrEmpty(dto.VehicleType))
	if err != nil {
		return nil, err
	}

	details, err := profile.RestoreRiderDetails(
		stringOrEmpty(dto.LicenseNumber),
		timeOrZero(dto.LicenseExpiry),
		vehicleType,
		stringOrEmpty(dto.VehiclePlate),
		stringOrEmpty(dto.VehicleModel),
		stringOrEmpty(dto.IdentityType),
		stringOrEmpty(dto.IdentityNumber),
		dto.IsAvailable,
		dto.Rating,
	)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
