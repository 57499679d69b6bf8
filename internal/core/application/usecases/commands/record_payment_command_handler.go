package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/payment"
)

// RecordPaymentCommandHandler records settlement steps on a delivery's
// payment. Back-office principals need the manage-deliveries permission;
// the assigned rider may record a cash collection on their own delivery.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	authorizer *Authorizer
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory, authorizer *Authorizer) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the payment recording command.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	isAssignedRider := aggregate.RiderID() != nil && aggregate.RiderID().IsEqual(cmd.Actor().ID())
	if !(isAssignedRider && cmd.Action() == PaymentActionCollectCash) {
		subjectID := aggregate.ID()
		if err = h.authorizer.Require(ctx, cmd.Actor(), access.PermissionManageDeliveries, &subjectID); err != nil {
			return err
		}
	}

	paymentRepo := uow.PaymentRepository()
	entity, err := paymentRepo.GetByDeliveryID(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.apply(entity, cmd); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, entity); err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	subjectID := aggregate.ID()
	entry, err := audit.NewEntry(
		audit.ChannelBusiness, audit.ActionRecordPayment, &actorID, &subjectID,
		map[string]string{
			"action": cmd.Action().String(),
			"status": entity.Status().String(),
		})
	if err != nil {
		return err
	}
	if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RecordPaymentCommandHandler) apply(entity *payment.Payment, cmd RecordPaymentCommand) error {
	switch cmd.Action() {
	case PaymentActionMarkProcessing:
		return entity.MarkProcessing()
	case PaymentActionMarkPaid:
		return entity.MarkPaid(cmd.TransactionID())
	case PaymentActionMarkFailed:
		return entity.MarkFailed()
	case PaymentActionCollectCash:
		return entity.CollectCash()
	case PaymentActionRefund:
		return entity.Refund()
	case PaymentActionRefundPartially:
		return entity.RefundPartially()
	default:
		return cmd.Action().Validate()
	}
}
