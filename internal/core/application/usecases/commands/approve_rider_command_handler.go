package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
)

// ApproveRiderCommandHandler activates rider applications. Requires the
// manage-riders permission.
type ApproveRiderCommandHandler struct {
	uowFactory ProfileUoWFactory
	authorizer *Authorizer
}

// NewApproveRiderCommandHandler creates a handler for rider approval.
func NewApproveRiderCommandHandler(uowFactory ProfileUoWFactory, authorizer *Authorizer) ApproveRiderCommandHandler {
	return ApproveRiderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the approval command.
func (h ApproveRiderCommandHandler) Handle(ctx context.Context, cmd ApproveRiderCommand) error {
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

	if err = rider.Approve(); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, rider); err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	entry, err := audit.NewEntry(
		audit.ChannelBusiness, audit.ActionApproveRider, &actorID, &profileID, nil)
	if err != nil {
		return err
	}
	if err = uow.AuditRecorder().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
