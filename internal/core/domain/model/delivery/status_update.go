package delivery

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrStatusUpdateIsNotConstructed = errors.New(
	"StatusUpdate must be created via NewStatusUpdate or RestoreStatusUpdate")

// StatusUpdate is one append-only history entry of a delivery's status
// trail. Entries are never mutated or deleted; the trail is totally ordered
// by creation time with the store's surrogate key breaking ties.
type StatusUpdate struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	status     Status
	actorID    *kernel.UUID
	location   string
	point      *kernel.GeoPoint
	notes      string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewStatusUpdate creates a history entry for the status value just
// reached. actorID is nil for system-initiated transitions; location, point
// and notes are optional.
func NewStatusUpdate(
	deliveryID kernel.UUID,
	status Status,
	actorID *kernel.UUID,
	location string,
	point *kernel.GeoPoint,
	notes string,
) (*StatusUpdate, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return nil, err
		}
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return nil, err
		}
	}

	return &StatusUpdate{
		id:         kernel.NewUUID(),
		deliveryID: deliveryID,
		status:     status,
		actorID:    actorID,
		location:   location,
		point:      point,
		notes:      notes,
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreStatusUpdate rebuilds a history entry from persistence.
func RestoreStatusUpdate(
	id kernel.UUID,
	deliveryID kernel.UUID,
	status Status,
	actorID *kernel.UUID,
	location string,
	point *kernel.GeoPoint,
	notes string,
	createdAt time.Time,
) (*StatusUpdate, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("status update created at")
	}

	return &StatusUpdate{
		id:         id,
		deliveryID: deliveryID,
		status:     status,
		actorID:    actorID,
		location:   location,
		point:      point,
		notes:      notes,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (u *StatusUpdate) Validate() error {
	if u == nil {
		return ErrStatusUpdateIsNotConstructed
	}
	return u.guard.Validate(ErrStatusUpdateIsNotConstructed)
}

func (u *StatusUpdate) ID() kernel.UUID {
	return u.id
}

func (u *StatusUpdate) DeliveryID() kernel.UUID {
	return u.deliveryID
}

func (u *StatusUpdate) Status() Status {
	return u.status
}

// ActorID returns the principal who caused the transition, or nil for
// system-initiated transitions.
func (u *StatusUpdate) ActorID() *kernel.UUID {
	return u.actorID
}

func (u *StatusUpdate) Location() string {
	return u.location
}

func (u *StatusUpdate) Point() *kernel.GeoPoint {
	return u.point
}

func (u *StatusUpdate) Notes() string {
	return u.notes
}

func (u *StatusUpdate) CreatedAt() time.Time {
	return u.createdAt
}
