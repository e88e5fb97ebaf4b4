package memory

import (
	"context"
	"sync"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/ports"
	"atlas/internal/pkg/errs"
)

var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore is the in-memory implementation of ports.OrderStore. Orders
// live for the lifetime of the process; insertion order is preserved so
// listings come back in creation order.
type OrderStore struct {
	mu sync.RWMutex

	// orders holds aggregates in insertion order
	orders []*order.Order

	// byID indexes orders by id
	byID map[kernel.UUID]int
}

// NewOrderStore creates an empty in-memory order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID: make(map[kernel.UUID]int),
	}
}

// Add stores a new order aggregate.
// Returns a ConflictError if an order with the same id already exists.
func (s *OrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[aggregate.ID()]; ok {
		return errs.NewConflictError("order id", aggregate.ID())
	}

	s.byID[aggregate.ID()] = len(s.orders)
	s.orders = append(s.orders, aggregate)
	return nil
}

// Get retrieves an order aggregate by its unique identifier.
// Returns an ObjectNotFoundError if no such order exists.
func (s *OrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(id)
}

// Transition advances an order to nextStatus. Only the immediate successor
// in the lifecycle is reachable; anything else returns an
// IllegalTransitionError and leaves the order unchanged.
func (s *OrderStore) Transition(_ context.Context, id kernel.UUID, nextStatus order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, err := s.get(id)
	if err != nil {
		return err
	}
	return aggregate.Advance(nextStatus)
}

// AssignWorker records which session handled a station for an order.
// It never affects the order's status.
func (s *OrderStore) AssignWorker(_ context.Context, id kernel.UUID, role session.Role, workerID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, err := s.get(id)
	if err != nil {
		return err
	}
	return aggregate.AssignWorker(role, workerID)
}

// ListByStatus retrieves all orders in the given status, in creation order.
func (s *OrderStore) ListByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*order.Order
	for _, aggregate := range s.orders {
		if aggregate.Status() == status {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

// ListAll retrieves every stored order in creation order.
func (s *OrderStore) ListAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, len(s.orders))
	copy(result, s.orders)
	return result, nil
}

func (s *OrderStore) get(id kernel.UUID) (*order.Order, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id.String())
	}
	return s.orders[i], nil
}
