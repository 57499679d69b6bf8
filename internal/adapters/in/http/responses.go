package http

import (
	"time"

	"parcelflow/internal/core/application/usecases/queries"
)

// createOrderResponse is the body returned by POST /api/v1/orders.
type createOrderResponse struct {
	DeliveryID string `json:"delivery_id"`
}

type trackHistoryEntry struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// trackDeliveryResponse is the public tracking view.
type trackDeliveryResponse struct {
	TrackingNumber    string              `json:"tracking_number"`
	Status            string              `json:"status"`
	RecipientName     string              `json:"recipient_name"`
	PickupAddress     string              `json:"pickup_address"`
	DeliveryAddress   string              `json:"delivery_address"`
	Priority          string              `json:"priority"`
	EstimatedPickup   time.Time           `json:"estimated_pickup"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
	ActualPickup      *time.Time          `json:"actual_pickup,omitempty"`
	ActualDelivery    *time.Time          `json:"actual_delivery,omitempty"`
	History           []trackHistoryEntry `json:"history"`
}

func toTrackDeliveryResponse(resp queries.TrackDeliveryQueryResponse) trackDeliveryResponse {
	history := make([]trackHistoryEntry, 0, len(resp.History))
	for _, entry := range resp.History {
		history = append(history, trackHistoryEntry{
			Status:    entry.Status,
			Location:  entry.Location,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		})
	}

	return trackDeliveryResponse{
		TrackingNumber:    resp.TrackingNumber,
		Status:            resp.Status,
		RecipientName:     resp.RecipientName,
		PickupAddress:     resp.PickupAddress,
		DeliveryAddress:   resp.DeliveryAddress,
		Priority:          resp.Priority,
		EstimatedPickup:   resp.EstimatedPickup,
		EstimatedDelivery: resp.EstimatedDelivery,
		ActualPickup:      resp.ActualPickup,
		ActualDelivery:    resp.ActualDelivery,
		History:           history,
	}
}

// dashboardResponse is the back-office overview.
type dashboardResponse struct {
	DeliveriesByStatus       map[string]int `json:"deliveries_by_status"`
	ActiveDeliveries         int            `json:"active_deliveries"`
	AvailableRiders          int            `json:"available_riders"`
	PendingRiderApplications int            `json:"pending_rider_applications"`
	DeliveredToday           int            `json:"delivered_today"`
	CompletionRate           float64        `json:"completion_rate"`
	RevenueToday             []string       `json:"revenue_today"`
}

func toDashboardResponse(resp queries.GetDashboardStatsQueryResponse) dashboardResponse {
	return dashboardResponse{
		DeliveriesByStatus:       resp.DeliveriesByStatus,
		ActiveDeliveries:         resp.ActiveDeliveries,
		AvailableRiders:          resp.AvailableRiders,
		PendingRiderApplications: resp.PendingRiderApplications,
		DeliveredToday:           resp.DeliveredToday,
		CompletionRate:           resp.CompletionRate,
		RevenueToday:             resp.RevenueToday,
	}
}

// pendingRiderResponse is one rider application awaiting review.
type pendingRiderResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	VehicleType   string    `json:"vehicle_type"`
	LicenseNumber string    `json:"license_number"`
	AppliedAt     time.Time `json:"applied_at"`
}

func toPendingRiderResponses(riders []queries.GetPendingRidersQueryResponse) []pendingRiderResponse {
	out := make([]pendingRiderResponse, 0, len(riders))
	for _, r := range riders {
		out = append(out, pendingRiderResponse{
			ID:            r.ID.String(),
			Name:          r.Name,
			Email:         r.Email,
			Phone:         r.Phone,
			VehicleType:   r.VehicleType,
			LicenseNumber: r.LicenseNumber,
			AppliedAt:     r.AppliedAt,
		})
	}
	return out
}

// auditEntryResponse is one audit trail entry.
type auditEntryResponse struct {
	Sequence   int64     `json:"sequence"`
	Channel    string    `json:"channel"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actor_id,omitempty"`
	SubjectID  string    `json:"subject_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

func toAuditEntryResponses(entries []queries.GetAuditTrailQueryResponse) []auditEntryResponse {
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			Sequence:   e.Sequence,
			Channel:    e.Channel,
			Action:     e.Action,
			ActorID:    e.ActorID,
			SubjectID:  e.SubjectID,
			Details:    e.Details,
			RecordedAt: e.RecordedAt,
		})
	}
	return out
}
