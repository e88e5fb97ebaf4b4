package queries

import (
	"context"

	"atlas/internal/core/ports"
)

// GetOrderTotalsQueryHandler sums the whole order store.
type GetOrderTotalsQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrderTotalsQueryHandler creates a handler for pipeline totals.
func NewGetOrderTotalsQueryHandler(store ports.OrderStore) GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{store: store}
}

// Handle executes the query.
func (h GetOrderTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalsQuery,
) (OrderTotalsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderTotalsResponse{}, err
	}

	orders, err := h.store.ListAll(ctx)
	if err != nil {
		return OrderTotalsResponse{}, err
	}

	totals := OrderTotalsResponse{Count: len(orders)}
	for _, aggregate := range orders {
		totals.Revenue += aggregate.Total()
	}
	return totals, nil
}
