package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrRejectRiderCommandIsNotConstructed = errors.New(
	"RejectRiderCommand must be created via NewRejectRiderCommand constructor",
)

// RejectRiderCommand represents a request to turn down a rider application
// awaiting review. The reason is kept in the audit trail.
type RejectRiderCommand struct { //nolint:recvcheck //using for validation
	actor     access.Principal
	profileID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectRiderCommand creates a rider rejection command.
func NewRejectRiderCommand(actor access.Principal, profileID kernel.UUID, reason string) (RejectRiderCommand, error) {
	cmd := RejectRiderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProfileID(profileID),
	); err != nil {
		return RejectRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRiderCommand) Validate() error {
	return c.guard.Validate(ErrRejectRiderCommandIsNotConstructed)
}

func (c RejectRiderCommand) Actor() access.Principal {
	return c.actor
}

func (c RejectRiderCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c RejectRiderCommand) Reason() string {
	return c.reason
}

func (c *RejectRiderCommand) setActor(actor access.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectRiderCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}
