package commands

import "context"

// LoginCommandHandler activates sessions through the session gate.
type LoginCommandHandler struct {
	gate SessionGate
}

// NewLoginCommandHandler creates a handler for session activation.
func NewLoginCommandHandler(gate SessionGate) LoginCommandHandler {
	return LoginCommandHandler{gate: gate}
}

// Handle processes the login command. A second login while another session
// is active surfaces the gate's ConflictError unchanged.
func (h LoginCommandHandler) Handle(_ context.Context, cmd LoginCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.gate.Login(cmd.SessionID())
}
