package commands

import (
	"context"

	"atlas/internal/core/ports"
)

// AssignWorkerCommandHandler records station workers on orders via the order
// store.
type AssignWorkerCommandHandler struct {
	store ports.OrderStore
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
func NewAssignWorkerCommandHandler(store ports.OrderStore) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{store: store}
}

// Handle processes the worker assignment command.
func (h AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.AssignWorker(ctx, cmd.OrderID(), cmd.Role(), cmd.WorkerID())
}
