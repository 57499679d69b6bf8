// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. One payment row is attached to each delivery.
package paymentrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payments.
// The amount and currency columns are read directly by the revenue query.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DeliveryID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	Method        string          `gorm:"type:varchar(32);not null"`
	Status        string          `gorm:"type:varchar(32);not null;index"`
	TransactionID string          `gorm:"type:varchar(128)"`
	CodCollected  bool            `gorm:"not null;default:false"`
	PaidAt        *time.Time
	RefundedAt    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain entity to its database
// representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		DeliveryID:    p.DeliveryID().Bytes(),
		Amount:        p.Amount().Amount(),
		Currency:      string(p.Amount().Currency()),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		CodCollected:  p.IsCodCollected(),
		PaidAt:        p.PaidAt(),
		RefundedAt:    p.RefundedAt(),
		CreatedAt:     p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain entity using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, kernel.Currency(dto.Currency))
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		deliveryID,
		amount,
		method,
		status,
		dto.TransactionID,
		dto.CodCollected,
		dto.PaidAt,
		dto.RefundedAt,
		dto.CreatedAt,
	)
}
