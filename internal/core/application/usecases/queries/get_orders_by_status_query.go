// Package queries contains read-only operations over system state.
// Implements the Query side of the CQRS architecture: queries never mutate
// orders or sessions and return plain response structs, not aggregates.
package queries

import (
	"errors"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves all orders in a given lifecycle status,
// in creation order. Station screens use it to build their work queues.
//
// Example:
//
//	query, _ := NewGetOrdersByStatusQuery(order.Pending)
//	pending, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	query := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status being queried.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// OrderSummaryResponse is one order in a status listing.
type OrderSummaryResponse struct {
	ID        kernel.UUID
	Customer  string
	Status    order.Status
	ItemCount int
	Total     float64
	CreatedAt time.Time
}
