package commands

import (
	"errors"

	"parcelflow/internal/pkg/guard"
)

var ErrStartRiderSearchCommandIsNotConstructed = errors.New(
	"StartRiderSearchCommand must be created via NewStartRiderSearchCommand constructor",
)

// StartRiderSearchCommand triggers the dispatch sweep: every pending
// delivery is moved into searching so the auto-assignment sweep can pick it
// up. This is a parameterless system command issued by the scheduler.
type StartRiderSearchCommand struct {
	guard guard.ConstructorGuard
}

// NewStartRiderSearchCommand creates a new command to trigger the dispatch sweep.
func NewStartRiderSearchCommand() StartRiderSearchCommand {
	return StartRiderSearchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *StartRiderSearchCommand) Validate() error {
	return c.guard.Validate(ErrStartRiderSearchCommandIsNotConstructed)
}
