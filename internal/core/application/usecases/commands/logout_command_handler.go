package commands

import "context"

// LogoutCommandHandler ends the active session through the session gate.
type LogoutCommandHandler struct {
	gate SessionGate
}

// NewLogoutCommandHandler creates a handler for session deactivation.
func NewLogoutCommandHandler(gate SessionGate) LogoutCommandHandler {
	return LogoutCommandHandler{gate: gate}
}

// Handle processes the logout command.
func (h LogoutCommandHandler) Handle(_ context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.gate.Logout()
	return nil
}
