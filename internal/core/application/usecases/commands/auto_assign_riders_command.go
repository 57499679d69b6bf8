package commands

import (
	"errors"

	"parcelflow/internal/pkg/guard"
)

var ErrAutoAssignRidersCommandIsNotConstructed = errors.New(
	"AutoAssignRidersCommand must be created via NewAutoAssignRidersCommand constructor",
)

// AutoAssignRidersCommand triggers the assignment sweep: every searching
// delivery is bound to the least-loaded available rider. This is a
// parameterless system command issued by the scheduler.
type AutoAssignRidersCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignRidersCommand creates a new command to trigger the assignment sweep.
func NewAutoAssignRidersCommand() AutoAssignRidersCommand {
	return AutoAssignRidersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AutoAssignRidersCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignRidersCommandIsNotConstructed)
}
