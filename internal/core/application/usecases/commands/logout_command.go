package commands

import (
	"errors"

	"atlas/internal/pkg/guard"
)

var (
	ErrLogoutCommandIsNotConstructed = errors.New(
		"LogoutCommand must be created via NewLogoutCommand constructor",
	)
)

// LogoutCommand deactivates the active session and restores its availability.
// Logging out with nobody logged in is a no-op.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a parameterless command to end the active session.
func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutCommandIsNotConstructed if validation fails.
func (c *LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
