package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackDeliveryQueryHandler serves the public tracking endpoint straight
// from the database.
type TrackDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewTrackDeliveryQueryHandler creates a handler for tracking queries.
func NewTrackDeliveryQueryHandler(db *gorm.DB) TrackDeliveryQueryHandler {
	return TrackDeliveryQueryHandler{db: db}
}

// Handle executes the tracking query. Returns errs.ErrObjectNotFound when
// the tracking number is unknown.
func (h TrackDeliveryQueryHandler) Handle(
	ctx context.Context,
	query TrackDeliveryQuery,
) (TrackDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	var resp TrackDeliveryQueryResponse
	var deliveryID string
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			recipient_name,
			pickup_address,
			delivery_address,
			priority,
			estimated_pickup,
			estimated_delivery,
			actual_pickup,
			actual_delivery
		FROM deliveries
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	var actualPickup, actualDelivery sql.NullTime
	var priority int
	err := row.Scan(
		&deliveryID,
		&resp.TrackingNumber,
		&resp.Status,
		&resp.RecipientName,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&priority,
		&resp.EstimatedPickup,
		&resp.EstimatedDelivery,
		&actualPickup,
		&actualDelivery,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackDeliveryQueryResponse{}, errs.NewObjectNotFoundError(
			"tracking number", query.TrackingNumber().String())
	}
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	resp.Priority = delivery.Priority(priority).String()
	if actualPickup.Valid {
		resp.ActualPickup = &actualPickup.Time
	}
	if actualDelivery.Valid {
		resp.ActualDelivery = &actualDelivery.Time
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			notes,
			created_at
		FROM delivery_status_updates
		WHERE delivery_id = ?
		ORDER BY created_at, id
	`, deliveryID).Rows()
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackDeliveryHistoryEntry
		if err = rows.Scan(&entry.Status, &entry.Location, &entry.Notes, &entry.CreatedAt); err != nil {
			return TrackDeliveryQueryResponse{}, err
		}
		resp.History = append(resp.History, entry)
	}
	if err = rows.Err(); err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	return resp, nil
}
