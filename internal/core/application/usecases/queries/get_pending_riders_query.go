package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetPendingRidersQueryIsNotConstructed = errors.New(
	"GetPendingRidersQuery must be created via NewGetPendingRidersQuery constructor",
)

// GetPendingRidersQuery retrieves rider applications awaiting review,
// oldest first. This is a parameterless query.
type GetPendingRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingRidersQuery creates a pending riders query.
func NewGetPendingRidersQuery() GetPendingRidersQuery {
	return GetPendingRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRidersQueryIsNotConstructed)
}

// GetPendingRidersQueryResponse is one rider application awaiting review.
type GetPendingRidersQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Email         string
	Phone         string
	VehicleType   string
	LicenseNumber string
	AppliedAt     time.Time
}
