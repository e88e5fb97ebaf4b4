package commands

import (
	"errors"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// LoginCommand activates a registered session. At most one session is active
// at a time; a second login without a logout conflicts.
type LoginCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to activate a session.
func NewLoginCommand(sessionID kernel.UUID) (LoginCommand, error) {
	command := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return LoginCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// SessionID returns the session to activate.
func (c LoginCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *LoginCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
