package ports

import (
	"context"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
)

// OrderStore defines the storage contract for order aggregates. It is the
// only authority on order state: station processors never mutate an order
// directly, they call Transition and AssignWorker here.
type OrderStore interface {
	// Add stores a new order aggregate.
	// Returns a ConflictError if an order with the same id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Transition advances an order to nextStatus. Only the immediate
	// successor in the lifecycle is reachable; anything else returns an
	// IllegalTransitionError and leaves the order unchanged.
	Transition(ctx context.Context, id kernel.UUID, nextStatus order.Status) error

	// AssignWorker records which session handled a station for an order.
	// It never affects the order's status.
	AssignWorker(ctx context.Context, id kernel.UUID, role session.Role, workerID kernel.UUID) error

	// ListByStatus retrieves all orders in the given status, in creation
	// order.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ListAll retrieves every stored order in creation order.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
