package ports

import (
	"context"
	"time"
)

// DeliveryStatusChanged is the event published after a delivery status
// mutation commits. Timestamps are UTC.
type DeliveryStatusChanged struct {
	DeliveryID     string    `json:"delivery_id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	RiderID        string    `json:"rider_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Notifier publishes delivery lifecycle events to interested parties.
// Publishing is best-effort: failures are logged by callers and never roll
// back the mutation that produced the event.
type Notifier interface {
	// PublishDeliveryStatusChanged publishes a status change event.
	PublishDeliveryStatusChanged(ctx context.Context, event DeliveryStatusChanged) error
}
