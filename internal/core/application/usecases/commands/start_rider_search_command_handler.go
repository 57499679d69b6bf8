package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
)

// StartRiderSearchCommandHandler moves every pending delivery into
// searching. Transitions are system-initiated: the history entries and
// audit records carry no actor.
type StartRiderSearchCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartRiderSearchCommandHandler creates a handler for the dispatch sweep.
func NewStartRiderSearchCommandHandler(uowFactory DeliveryUoWFactory) StartRiderSearchCommandHandler {
	return StartRiderSearchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch sweep command.
func (h StartRiderSearchCommandHandler) Handle(ctx context.Context, cmd StartRiderSearchCommand) error {
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
	pending, err := deliveryRepo.GetAllInStatus(ctx, delivery.Pending)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		if err = aggregate.TransitionTo(delivery.Searching, nil, "", nil, ""); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		subjectID := aggregate.ID()
		entry, err := audit.NewEntry(
			audit.ChannelBusiness, audit.ActionUpdateStatus, nil, &subjectID,
			map[string]string{"from": delivery.Pending.String(), "to": delivery.Searching.String()})
		if err != nil {
			return err
		}
		if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
