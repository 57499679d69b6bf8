package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrApproveRiderCommandIsNotConstructed = errors.New(
	"ApproveRiderCommand must be created via NewApproveRiderCommand constructor",
)

// ApproveRiderCommand represents a request to activate a rider application
// awaiting review.
type ApproveRiderCommand struct { //nolint:recvcheck //using for validation
	actor     access.Principal
	profileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRiderCommand creates a rider approval command.
func NewApproveRiderCommand(actor access.Principal, profileID kernel.UUID) (ApproveRiderCommand, error) {
	cmd := ApproveRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProfileID(profileID),
	); err != nil {
		return ApproveRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRiderCommand) Validate() error {
	return c.guard.Validate(ErrApproveRiderCommandIsNotConstructed)
}

func (c ApproveRiderCommand) Actor() access.Principal {
	return c.actor
}

func (c ApproveRiderCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c *ApproveRiderCommand) setActor(actor access.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApproveRiderCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}
