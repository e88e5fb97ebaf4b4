package queries

import (
	"context"

	"atlas/internal/core/ports"
)

// GetOrdersByStatusQueryHandler builds status listings from the order store.
type GetOrdersByStatusQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(store ports.OrderStore) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{store: store}
}

// Handle executes the query. Results come back in creation order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.ListByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryResponse, 0, len(orders))
	for _, aggregate := range orders {
		summaries = append(summaries, OrderSummaryResponse{
			ID:        aggregate.ID(),
			Customer:  aggregate.Customer(),
			Status:    aggregate.Status(),
			ItemCount: len(aggregate.Items()),
			Total:     aggregate.Total(),
			CreatedAt: aggregate.CreatedAt(),
		})
	}
	return summaries, nil
}
