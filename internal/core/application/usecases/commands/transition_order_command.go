package commands

import (
	"errors"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand requests advancing an order to the next status in
// its lifecycle. The order store enforces that only the immediate successor
// is reachable.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	nextStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to advance an order's status.
func NewTransitionOrderCommand(orderID kernel.UUID, nextStatus order.Status) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNextStatus(nextStatus),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NextStatus returns the requested target status.
func (c TransitionOrderCommand) NextStatus() order.Status {
	return c.nextStatus
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
