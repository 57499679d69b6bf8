package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand represents a rider toggling whether they are
// accepting new assignments.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actor     access.Principal
	profileID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates an availability toggle command.
func NewSetRiderAvailabilityCommand(
	actor access.Principal,
	profileID kernel.UUID,
	available bool,
) (SetRiderAvailabilityCommand, error) {
	cmd := SetRiderAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProfileID(profileID),
	); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

func (c SetRiderAvailabilityCommand) Actor() access.Principal {
	return c.actor
}

func (c SetRiderAvailabilityCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c SetRiderAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetRiderAvailabilityCommand) setActor(actor access.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetRiderAvailabilityCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}
