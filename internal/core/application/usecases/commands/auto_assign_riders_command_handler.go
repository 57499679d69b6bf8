package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// ErrNoAvailableRiders is returned when the assignment sweep finds searching
// deliveries but no eligible rider to hand them to.
var ErrNoAvailableRiders = errors.New("no available riders found")

// AutoAssignRidersCommandHandler binds every searching delivery to the
// least-loaded available rider. Deliveries it cannot place stay in
// searching for the next sweep. Assignments are system-initiated: history
// and audit entries carry no actor.
type AutoAssignRidersCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAutoAssignRidersCommandHandler creates a handler for the assignment sweep.
func NewAutoAssignRidersCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AutoAssignRidersCommandHandler {
	return AutoAssignRidersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "auto_assign_riders"),
	}
}

// Handle processes the assignment sweep command.
func (h AutoAssignRidersCommandHandler) Handle(ctx context.Context, cmd AutoAssignRidersCommand) error {
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
	searching, err := deliveryRepo.GetAllInStatus(ctx, delivery.Searching)
	if err != nil {
		return err
	}
	if len(searching) == 0 {
		return uow.Commit(ctx)
	}

	riders, err := uow.ProfileRepository().GetAvailableRiders(ctx)
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoAvailableRiders
	}

	// Active counts are read once and tracked in memory so assignments
	// made within this sweep spread the load.
	loads := make(map[string]int, len(riders))
	candidates := make([]services.Candidate, 0, len(riders))
	for _, rider := range riders {
		count, err := deliveryRepo.CountActiveByRider(ctx, rider.ID())
		if err != nil {
			return err
		}
		loads[rider.ID().String()] = count
		candidates = append(candidates, services.Candidate{Rider: rider, ActiveCount: count})
	}

	assigner := services.NewRiderAssigner()
	assigned := make([]*delivery.Delivery, 0, len(searching))
	for _, aggregate := range searching {
		for i := range candidates {
			candidates[i].ActiveCount = loads[candidates[i].Rider.ID().String()]
		}

		best, err := assigner.AssignBest(aggregate, candidates)
		if errors.Is(err, services.ErrRiderNotFound) {
			break
		}
		if err != nil {
			return err
		}
		loads[best.ID().String()]++

		if err = deliveryRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		subjectID := aggregate.ID()
		entry, err := audit.NewEntry(
			audit.ChannelBusiness, audit.ActionAssignRider, nil, &subjectID,
			map[string]string{"rider_id": best.ID().String()})
		if err != nil {
			return err
		}
		if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
			return err
		}

		assigned = append(assigned, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range assigned {
		h.publish(ctx, aggregate)
	}
	return nil
}

func (h AutoAssignRidersCommandHandler) publish(ctx context.Context, aggregate *delivery.Delivery) {
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
