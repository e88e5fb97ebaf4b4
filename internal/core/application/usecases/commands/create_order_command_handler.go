package commands

import (
	"context"
	"time"

	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/ports"
	"atlas/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves requested product names against the catalog and stores the new
// order in pending status.
type CreateOrderCommandHandler struct {
	store   ports.OrderStore
	catalog *catalog.Catalog
	roles   RoleChecker
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateOrderCommandHandler(
	store ports.OrderStore,
	cat *catalog.Catalog,
	roles RoleChecker,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		store:   store,
		catalog: cat,
		roles:   roles,
	}
}

// Handle processes the order creation command.
//
// Only a logged-in customer may create orders. Each requested line is
// resolved against the catalog, tolerating close misspellings; an
// unresolvable product name fails the whole command. Line prices and shelf
// locations come from the catalog, never from the caller.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.roles.RequireRole(session.RoleCustomer); err != nil {
		return err
	}

	items := make([]*order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product, ok := h.catalog.FindClosest(line.Product)
		if !ok {
			return errs.NewObjectNotFoundError("product", line.Product)
		}

		item, err := order.NewLineItem(
			kernel.NewUUID(),
			product.Name,
			line.Quantity,
			product.UnitPrice,
			product.ShelfLocation(),
			product.Category,
		)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), items, time.Now())
	if err != nil {
		return err
	}

	return h.store.Add(ctx, aggregate)
}
