package stations

import (
	"context"
	"strings"
	"sync"
	"time"

	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/intake"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/ports"
	"atlas/internal/pkg/errs"
)

// IntakeProcessor runs the intake station. It reviews pending orders in
// bulk, releasing them to the picking queue, and tracks inbound stock
// receipts through their received, verified and stocked states.
type IntakeProcessor struct {
	mu sync.Mutex

	store   ports.OrderStore
	catalog *catalog.Catalog
	roles   RoleChecker

	// receipts holds inbound stock receipts in creation order
	receipts []*intake.Receipt

	// byReceipt indexes receipts by id
	byReceipt map[kernel.UUID]int
}

// NewIntakeProcessor creates an intake station processor.
func NewIntakeProcessor(store ports.OrderStore, cat *catalog.Catalog, roles RoleChecker) *IntakeProcessor {
	return &IntakeProcessor{
		store:     store,
		catalog:   cat,
		roles:     roles,
		byReceipt: make(map[kernel.UUID]int),
	}
}

// ProcessPending reviews every pending order and releases it to the picking
// queue. Each released order moves to intake review and records the operator
// as its intake worker. Returns the ids of the released orders, in creation
// order.
//
// Only a logged-in intake operator may run the review.
func (p *IntakeProcessor) ProcessPending(ctx context.Context) ([]kernel.UUID, error) {
	operator, err := p.roles.RequireRole(session.RoleIntakeOperator)
	if err != nil {
		return nil, err
	}

	pending, err := p.store.ListByStatus(ctx, order.Pending)
	if err != nil {
		return nil, err
	}

	released := make([]kernel.UUID, 0, len(pending))
	for _, aggregate := range pending {
		if err := p.store.Transition(ctx, aggregate.ID(), order.IntakeReview); err != nil {
			return released, err
		}
		if err := p.store.AssignWorker(ctx, aggregate.ID(), session.RoleIntakeOperator, operator.ID()); err != nil {
			return released, err
		}
		released = append(released, aggregate.ID())
	}
	return released, nil
}

// CreateReceipt registers an inbound stock receipt. The product name is
// resolved against the catalog, tolerating close misspellings, and the
// receipt inherits the product's shelf location.
//
// Only a logged-in intake operator may register receipts.
func (p *IntakeProcessor) CreateReceipt(product string, quantity int, supplier string) (*intake.Receipt, error) {
	if _, err := p.roles.RequireRole(session.RoleIntakeOperator); err != nil {
		return nil, err
	}

	if strings.TrimSpace(product) == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	entry, ok := p.catalog.FindClosest(product)
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", product)
	}

	receipt, err := intake.NewReceipt(kernel.NewUUID(), entry.Name, quantity,
		supplier, entry.ShelfLocation(), time.Now())
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.byReceipt[receipt.ID()] = len(p.receipts)
	p.receipts = append(p.receipts, receipt)
	return receipt, nil
}

// VerifyReceipt confirms a received receipt against the physical delivery.
func (p *IntakeProcessor) VerifyReceipt(id kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RoleIntakeOperator); err != nil {
		return err
	}

	receipt, err := p.receipt(id)
	if err != nil {
		return err
	}
	return receipt.Verify()
}

// StockReceipt shelves a verified receipt at its location.
func (p *IntakeProcessor) StockReceipt(id kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RoleIntakeOperator); err != nil {
		return err
	}

	receipt, err := p.receipt(id)
	if err != nil {
		return err
	}
	return receipt.Stock()
}

// Receipts returns every registered receipt in creation order.
// The returned slice must not be mutated by callers.
func (p *IntakeProcessor) Receipts() []*intake.Receipt {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.receipts
}

func (p *IntakeProcessor) receipt(id kernel.UUID) (*intake.Receipt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i, ok := p.byReceipt[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("receipt id", id.String())
	}
	return p.receipts[i], nil
}
