package queries

import (
	"context"
	"database/sql"

	"parcelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingRidersQueryHandler lists rider applications awaiting review.
type GetPendingRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRidersQueryHandler creates a handler for the approval queue.
func NewGetPendingRidersQueryHandler(db *gorm.DB) GetPendingRidersQueryHandler {
	return GetPendingRidersQueryHandler{db: db}
}

// Handle executes the approval queue query, oldest applications first.
func (h GetPendingRidersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRidersQuery,
) ([]GetPendingRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetPendingRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			vehicle_type,
			license_number,
			created_at
		FROM profiles
		WHERE status = 'pending_approval'
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingRidersQueryResponse
		var id uuid.UUID
		var vehicleType, licenseNumber sql.NullString

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&vehicleType,
			&licenseNumber,
			&resp.AppliedAt,
		); err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID
		resp.VehicleType = vehicleType.String
		resp.LicenseNumber = licenseNumber.String

		riders = append(riders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
