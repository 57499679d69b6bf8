package payment

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

// Domain errors for payment operations.
var (
	// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
	// ErrPaymentNotPending is returned when processing a payment that already left pending.
	ErrPaymentNotPending = errors.New("payment is not pending")
	// ErrPaymentNotSettleable is returned when settling a payment that is
	// neither pending nor processing.
	ErrPaymentNotSettleable = errors.New("payment cannot be settled from its current status")
	// ErrPaymentNotPaid is returned when refunding a payment that was never paid.
	ErrPaymentNotPaid = errors.New("payment is not paid")
	// ErrNotCashOnDelivery is returned when collecting cash on a non-cash payment.
	ErrNotCashOnDelivery = errors.New("cash collection requires the cash payment method")
)

// Payment tracks how a single delivery gets paid for. It is an entity owned
// by the delivery it belongs to (1:1), created together with the order.
//
// Key business rules:
//   - payments start pending and settle through processing into paid or failed
//   - paidAt is stamped once when the payment settles and never overwritten
//   - cash-on-delivery collection is only valid for the cash method and
//     settles the payment in the same step
//   - refunds require a paid payment
type Payment struct {
	id            kernel.UUID
	deliveryID    kernel.UUID
	amount        kernel.Money
	method        Method
	status        Status
	transactionID string
	codCollected  bool
	paidAt        *time.Time
	refundedAt    *time.Time
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a pending payment for a delivery.
func NewPayment(
	id kernel.UUID,
	deliveryID kernel.UUID,
	amount kernel.Money,
	method Method,
) (*Payment, error) {
	payment := &Payment{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setDeliveryID(deliveryID),
		payment.setAmount(amount),
		payment.setMethod(method),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a payment from persistent storage.
func RestorePayment(
	id kernel.UUID,
	deliveryID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	transactionID string,
	codCollected bool,
	paidAt *time.Time,
	refundedAt *time.Time,
	createdAt time.Time,
) (*Payment, error) {
	payment := &Payment{
		transactionID: transactionID,
		codCollected:  codCollected,
		paidAt:        paidAt,
		refundedAt:    refundedAt,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setDeliveryID(deliveryID),
		payment.setAmount(amount),
		payment.setMethod(method),
		payment.setStatus(status),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate checks if the Payment was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) DeliveryID() kernel.UUID {
	return p.deliveryID
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) IsCodCollected() bool {
	return p.codCollected
}

func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

func (p *Payment) RefundedAt() *time.Time {
	return p.refundedAt
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// MarkProcessing moves a pending payment into the hands of the payment
// provider.
func (p *Payment) MarkProcessing() error {
	if p.status != StatusPending {
		return ErrPaymentNotPending
	}

	p.status = StatusProcessing
	return nil
}

// MarkPaid settles the payment, recording the provider's transaction
// reference and stamping paidAt once.
func (p *Payment) MarkPaid(transactionID string) error {
	if p.status != StatusPending && p.status != StatusProcessing {
		return ErrPaymentNotSettleable
	}

	p.status = StatusPaid
	p.transactionID = transactionID
	if p.paidAt == nil {
		now := time.Now().UTC()
		p.paidAt = &now
	}
	return nil
}

// MarkFailed records a settlement failure. The payment can be retried by the
// provider, which moves it back through processing.
func (p *Payment) MarkFailed() error {
	if p.status != StatusPending && p.status != StatusProcessing {
		return ErrPaymentNotSettleable
	}

	p.status = StatusFailed
	return nil
}

// CollectCash records a cash-on-delivery collection by the rider and settles
// the payment in the same step.
func (p *Payment) CollectCash() error {
	if p.method != MethodCash {
		return ErrNotCashOnDelivery
	}
	if p.status != StatusPending && p.status != StatusProcessing {
		return ErrPaymentNotSettleable
	}

	p.codCollected = true
	p.status = StatusPaid
	if p.paidAt == nil {
		now := time.Now().UTC()
		p.paidAt = &now
	}
	return nil
}

// Refund returns the full amount to the payer.
func (p *Payment) Refund() error {
	if p.status != StatusPaid && p.status != StatusPartiallyRefunded {
		return ErrPaymentNotPaid
	}

	p.status = StatusRefunded
	now := time.Now().UTC()
	p.refundedAt = &now
	return nil
}

// RefundPartially returns part of the amount to the payer. The payment stays
// refundable for the remainder.
func (p *Payment) RefundPartially() error {
	if p.status != StatusPaid && p.status != StatusPartiallyRefunded {
		return ErrPaymentNotPaid
	}

	p.status = StatusPartiallyRefunded
	now := time.Now().UTC()
	p.refundedAt = &now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Payment) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	p.deliveryID = deliveryID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	p.method = method
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}
