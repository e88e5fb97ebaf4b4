package commands

import (
	"errors"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

var (
	ErrAssignWorkerCommandIsNotConstructed = errors.New(
		"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
	)
)

// AssignWorkerCommand records which session handled a station for an order.
// It never changes the order's status.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	role     session.Role
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to record a station worker. The
// customer role is not a station and is rejected.
func NewAssignWorkerCommand(orderID kernel.UUID, role session.Role, workerID kernel.UUID) (AssignWorkerCommand, error) {
	command := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRole(role),
		command.setWorkerID(workerID),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignWorkerCommandIsNotConstructed if validation fails.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// OrderID returns the order being worked.
func (c AssignWorkerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the station role being recorded.
func (c AssignWorkerCommand) Role() session.Role {
	return c.role
}

// WorkerID returns the session that handled the station.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AssignWorkerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWorkerCommand) setRole(role session.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == session.RoleCustomer {
		return errs.NewValueIsInvalidError("station role")
	}

	c.role = role
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
