// Package lognotify implements the notifier port as a structured log line.
// Used when no message broker is configured, typically in local development.
package lognotify

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/ports"
)

// Notifier logs delivery lifecycle events instead of publishing them.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a log-backed notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger.With("component", "lognotify")}
}

// PublishDeliveryStatusChanged logs the event and always succeeds.
func (n *Notifier) PublishDeliveryStatusChanged(
	ctx context.Context,
	event ports.DeliveryStatusChanged,
) error {
	n.logger.InfoContext(ctx, "delivery status changed",
		"delivery_id", event.DeliveryID,
		"tracking_number", event.TrackingNumber,
		"status", event.Status,
		"rider_id", event.RiderID)
	return nil
}
