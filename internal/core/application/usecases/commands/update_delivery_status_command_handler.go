package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler moves a delivery through its lifecycle.
// Back-office principals need the manage-deliveries permission; the assigned
// rider may update their own delivery without it. After a successful commit
// the status change is published to the notifier; publish failures are
// logged and never roll back the mutation.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	authorizer *Authorizer
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status updates.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	authorizer *Authorizer,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		notifier:   notifier,
		logger:     logger.With("component", "update_delivery_status"),
	}
}

// Handle processes the status update command.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.authorize(ctx, cmd, aggregate); err != nil {
		return err
	}

	previous := aggregate.Status()
	actorID := cmd.Actor().ID()
	if err = aggregate.TransitionTo(cmd.Target(), &actorID, cmd.Location(), cmd.Point(), cmd.Notes()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	subjectID := aggregate.ID()
	entry, err := audit.NewEntry(
		audit.ChannelBusiness, audit.ActionUpdateStatus, &actorID, &subjectID,
		map[string]string{
			"from": previous.String(),
			"to":   cmd.Target().String(),
		})
	if err != nil {
		return err
	}
	if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, aggregate)
	return nil
}

// authorize allows the assigned rider to update their own delivery; anyone
// else needs the manage-deliveries permission.
func (h UpdateDeliveryStatusCommandHandler) authorize(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
	aggregate *delivery.Delivery,
) error {
	if aggregate.RiderID() != nil && aggregate.RiderID().IsEqual(cmd.Actor().ID()) {
		return nil
	}

	subjectID := aggregate.ID()
	return h.authorizer.Require(ctx, cmd.Actor(), access.PermissionManageDeliveries, &subjectID)
}

func (h UpdateDeliveryStatusCommandHandler) publish(ctx context.Context, aggregate *delivery.Delivery) {
	event := ports.DeliveryStatusChanged{
		DeliveryID:     aggregate.ID().String(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		Status:         aggregate.Status().String(),
		OccurredAt:     time.Now().UTC(),
	}
	if aggregate.RiderID() != nil {
		event.RiderID = aggregate.RiderID().String()
	}

	if err := h.notifier.PublishDeliveryStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish status change",
			"delivery_id", event.DeliveryID, "error", err)
	}
}
