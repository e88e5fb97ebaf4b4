package commands

import (
	"context"

	"atlas/internal/core/ports"
)

// TransitionOrderCommandHandler advances an order through its lifecycle via
// the order store, which is the only authority on status changes.
type TransitionOrderCommandHandler struct {
	store ports.OrderStore
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(store ports.OrderStore) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{store: store}
}

// Handle processes the transition command. An attempt to skip a stage or go
// backwards surfaces the store's IllegalTransitionError unchanged.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.Transition(ctx, cmd.OrderID(), cmd.NextStatus())
}
