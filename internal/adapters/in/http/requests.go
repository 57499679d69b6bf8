package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// createOrderRequest is the body of POST /api/v1/orders.
type createOrderRequest struct {
	PackageDescription  string          `json:"package_description"`
	WeightKg            decimal.Decimal `json:"weight_kg"`
	PackageType         string          `json:"package_type"`
	SpecialInstructions string          `json:"special_instructions"`
	Fragile             bool            `json:"fragile"`
	RequiresSignature   bool            `json:"requires_signature"`
	RecipientName       string          `json:"recipient_name"`
	RecipientPhone      string          `json:"recipient_phone"`
	PickupAddress       string          `json:"pickup_address"`
	DeliveryAddress     string          `json:"delivery_address"`
	PickupLatitude      *float64        `json:"pickup_latitude"`
	PickupLongitude     *float64        `json:"pickup_longitude"`
	DeliveryLatitude    *float64        `json:"delivery_latitude"`
	DeliveryLongitude   *float64        `json:"delivery_longitude"`
	EstimatedPickup     time.Time       `json:"estimated_pickup"`
	EstimatedDelivery   time.Time       `json:"estimated_delivery"`
	Priority            string          `json:"priority"`
	PaymentMethod       string          `json:"payment_method"`
	Notes               string          `json:"notes"`
}

// updateStatusRequest is the body of POST /api/v1/deliveries/:id/status.
type updateStatusRequest struct {
	Status    string   `json:"status"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

// assignRiderRequest is the body of POST /api/v1/deliveries/:id/assign.
type assignRiderRequest struct {
	RiderID string `json:"rider_id"`
}

// recordPaymentRequest is the body of POST /api/v1/deliveries/:id/payment.
type recordPaymentRequest struct {
	Action        string `json:"action"`
	TransactionID string `json:"transaction_id"`
}

// rejectRiderRequest is the body of POST /api/v1/riders/:id/reject.
type rejectRiderRequest struct {
	Reason string `json:"reason"`
}

// availabilityRequest is the body of POST /api/v1/riders/:id/availability.
type availabilityRequest struct {
	Available bool `json:"available"`
}
