package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
)

// RejectRiderCommandHandler turns down rider applications, suspending the
// profile so its history stays auditable. Requires the manage-riders
// permission.
type RejectRiderCommandHandler struct {
	uowFactory ProfileUoWFactory
	authorizer *Authorizer
}

// NewRejectRiderCommandHandler creates a handler for rider rejection.
func NewRejectRiderCommandHandler(uowFactory ProfileUoWFactory, authorizer *Authorizer) RejectRiderCommandHandler {
	return RejectRiderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the rejection command.
func (h RejectRiderCommandHandler) Handle(ctx context.Context, cmd RejectRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profileID := cmd.ProfileID()
	if err := h.authorizer.Require(ctx, cmd.Actor(), access.PermissionManageRiders, &profileID); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()
	rider, err := profileRepo.Get(ctx, cmd.ProfileID())
	if err != nil {
		return err
	}

	if err = rider.Reject(); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, rider); err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	entry, err := audit.NewEntry(
		audit.ChannelBusiness, audit.ActionRejectRider, &actorID, &profileID,
		map[string]string{"reason": cmd.Reason()})
	if err != nil {
		return err
	}
	if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
