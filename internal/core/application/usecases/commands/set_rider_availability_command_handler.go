package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/access"
)

// SetRiderAvailabilityCommandHandler toggles a rider's availability. Riders
// manage their own flag; anyone else needs the manage-riders permission.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory ProfileUoWFactory
	authorizer *Authorizer
}

// NewSetRiderAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetRiderAvailabilityCommandHandler(
	uowFactory ProfileUoWFactory,
	authorizer *Authorizer,
) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the availability toggle command.
func (h SetRiderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetRiderAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().ID().IsEqual(cmd.ProfileID()) {
		profileID := cmd.ProfileID()
		if err := h.authorizer.Require(ctx, cmd.Actor(), access.PermissionManageRiders, &profileID); err != nil {
			return err
		}
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

	if err = rider.SetAvailability(cmd.Available()); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, rider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
