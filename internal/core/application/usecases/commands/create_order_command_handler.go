package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
)

// CreateOrderCommandHandler opens a new delivery order. The delivery and
// its payment are created atomically; the fee comes from the injected fee
// schedule. The sender must be an active customer-capable profile.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	authorizer *Authorizer
	fees       FeeSchedule
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	authorizer *Authorizer,
	fees FeeSchedule,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		fees:       fees,
	}
}

// Handle processes the order creation command. The sender is the acting
// principal; their profile must allow sending deliveries. On success the
// delivery starts in pending with its payment attached, and a business
// audit entry commits in the same transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	fee, err := h.fees.FeeFor(cmd.Package())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := uow.ProfileRepository().Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}
	if !sender.CanSendDeliveries() {
		return h.authorizer.Deny(ctx, cmd.Actor(), "send_deliveries", nil)
	}

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		sender.ID(),
		cmd.Package(),
		cmd.RecipientName(),
		cmd.RecipientPhone(),
		cmd.Route(),
		cmd.EstimatedPickup(),
		cmd.EstimatedDelivery(),
		cmd.Priority(),
		fee,
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(kernel.NewUUID(), newDelivery.ID(), fee, cmd.PaymentMethod())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}
	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	subjectID := newDelivery.ID()
	entry, err := audit.NewEntry(
		audit.ChannelBusiness, audit.ActionCreateOrder, &actorID, &subjectID,
		map[string]string{
			"tracking_number": newDelivery.TrackingNumber().String(),
			"fee":             fee.String(),
			"payment_method":  cmd.PaymentMethod().String(),
		})
	if err != nil {
		return err
	}
	if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
