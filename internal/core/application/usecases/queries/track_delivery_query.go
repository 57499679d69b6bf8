// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and return plain response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/pkg/guard"
)

var ErrTrackDeliveryQueryIsNotConstructed = errors.New(
	"TrackDeliveryQuery must be created via NewTrackDeliveryQuery constructor",
)

// TrackDeliveryQuery retrieves the public tracking view of a delivery by
// its tracking number. This is the one read that requires no principal.
type TrackDeliveryQuery struct {
	trackingNumber delivery.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackDeliveryQuery creates a tracking query for the given number.
func NewTrackDeliveryQuery(trackingNumber delivery.TrackingNumber) (TrackDeliveryQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return TrackDeliveryQuery{}, err
	}

	return TrackDeliveryQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrTrackDeliveryQueryIsNotConstructed)
}

// TrackingNumber returns the number being tracked.
func (q TrackDeliveryQuery) TrackingNumber() delivery.TrackingNumber {
	return q.trackingNumber
}

// TrackDeliveryHistoryEntry is one row of the public status history.
type TrackDeliveryHistoryEntry struct {
	Status    string
	Location  string
	Notes     string
	CreatedAt time.Time
}

// TrackDeliveryQueryResponse is the public tracking view: no sender, rider
// or payment identifiers are exposed.
type TrackDeliveryQueryResponse struct {
	TrackingNumber    string
	Status            string
	RecipientName     string
	PickupAddress     string
	DeliveryAddress   string
	Priority          string
	EstimatedPickup   time.Time
	EstimatedDelivery time.Time
	ActualPickup      *time.Time
	ActualDelivery    *time.Time
	History           []TrackDeliveryHistoryEntry
}
