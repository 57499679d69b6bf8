package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// AssignRiderCommandHandler binds a hand-picked rider to a delivery.
// Requires the manage-deliveries permission. Rider eligibility is enforced
// by the domain assigner: only approved, available riders can be bound.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	authorizer *Authorizer
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignRiderCommandHandler creates a handler for manual rider assignment.
func NewAssignRiderCommandHandler(
	uowFactory UoWFactory,
	authorizer *Authorizer,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		notifier:   notifier,
		logger:     logger.With("component", "assign_rider"),
	}
}

// Handle processes the manual assignment command.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deliveryID := cmd.DeliveryID()
	if err := h.authorizer.Require(ctx, cmd.Actor(), access.PermissionManageDeliveries, &deliveryID); err != nil {
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

	rider, err := uow.ProfileRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = services.NewRiderAssigner().Assign(aggregate, rider); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	subjectID := aggregate.ID()
	entry, err := audit.NewEntry(
		audit.ChannelBusiness, audit.ActionAssignRider, &actorID, &subjectID,
		map[string]string{"rider_id": rider.ID().String()})
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

func (h AssignRiderCommandHandler) publish(ctx context.Context, aggregate *delivery.Delivery) {
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
