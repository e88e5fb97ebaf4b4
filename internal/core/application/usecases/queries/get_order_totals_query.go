package queries

import (
	"errors"

	"atlas/internal/pkg/guard"
)

var (
	ErrGetOrderTotalsQueryIsNotConstructed = errors.New(
		"GetOrderTotalsQuery must be created via NewGetOrderTotalsQuery constructor",
	)
)

// GetOrderTotalsQuery retrieves the aggregate order count and revenue across
// every lifecycle status. The board shows it as a running pipeline total.
type GetOrderTotalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderTotalsQuery creates a parameterless query for the pipeline
// totals.
func NewGetOrderTotalsQuery() GetOrderTotalsQuery {
	return GetOrderTotalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTotalsQueryIsNotConstructed if validation fails.
func (q GetOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalsQueryIsNotConstructed)
}

// OrderTotalsResponse aggregates the whole pipeline regardless of status.
type OrderTotalsResponse struct {
	Count   int
	Revenue float64
}
