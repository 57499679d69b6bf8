package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment entities.
type PaymentRepository interface {
	// Add persists a new payment to storage.
	Add(ctx context.Context, entity *payment.Payment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, entity *payment.Payment) error

	// GetByDeliveryID retrieves the payment attached to a delivery.
	GetByDeliveryID(ctx context.Context, deliveryID kernel.UUID) (*payment.Payment, error)
}
