package stations

import (
	"context"
	"sync"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/packing"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/ports"
	"atlas/internal/pkg/errs"
)

// PackingProcessor runs the packing station. It holds one in-flight packing
// run per order; a second start for the same order before completion
// conflicts.
type PackingProcessor struct {
	mu sync.Mutex

	store ports.OrderStore
	roles RoleChecker

	// runs holds in-flight packing runs keyed by order id
	runs map[kernel.UUID]*packing.Process
}

// NewPackingProcessor creates a packing station processor.
func NewPackingProcessor(store ports.OrderStore, roles RoleChecker) *PackingProcessor {
	return &PackingProcessor{
		store: store,
		roles: roles,
		runs:  make(map[kernel.UUID]*packing.Process),
	}
}

// Start opens a packing run for a picked order.
//
// Only a logged-in packer may start a run. Starting a second run for the
// same order before the first completes returns a ConflictError.
func (p *PackingProcessor) Start(ctx context.Context, orderID kernel.UUID) (*packing.Process, error) {
	packer, err := p.roles.RequireRole(session.RolePacker)
	if err != nil {
		return nil, err
	}

	aggregate, err := p.store.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.runs[orderID]; ok {
		return nil, errs.NewConflictError("packing run", orderID.String())
	}

	run, err := packing.NewProcess(kernel.NewUUID(), aggregate, packer.ID(), time.Now())
	if err != nil {
		return nil, err
	}

	p.runs[orderID] = run
	return run, nil
}

// SelectPackaging commits the packer to a container and unlocks item work.
func (p *PackingProcessor) SelectPackaging(_ context.Context, orderID kernel.UUID, kind packing.PackagingKind) error {
	if _, err := p.roles.RequireRole(session.RolePacker); err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}
	return run.SelectPackaging(kind)
}

// MarkItemPacked moves one pending item into the container. Re-marking a
// packed or verified item is a no-op.
func (p *PackingProcessor) MarkItemPacked(_ context.Context, orderID, lineItemID kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RolePacker); err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}
	return run.MarkItemPacked(lineItemID)
}

// VerifyItem checks one packed item against its order line.
func (p *PackingProcessor) VerifyItem(_ context.Context, orderID, lineItemID kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RolePacker); err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}
	return run.VerifyItem(lineItemID)
}

// Complete closes the run once every item is verified, advances the order to
// packed, records the packer as its packing worker and discards the run
// record.
func (p *PackingProcessor) Complete(ctx context.Context, orderID kernel.UUID) error {
	packer, err := p.roles.RequireRole(session.RolePacker)
	if err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}

	if err := run.Complete(); err != nil {
		return err
	}

	if err := p.store.Transition(ctx, orderID, order.Packed); err != nil {
		return err
	}
	if err := p.store.AssignWorker(ctx, orderID, session.RolePacker, packer.ID()); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.runs, orderID)
	return nil
}

// Discard abandons an in-flight run without advancing the order.
func (p *PackingProcessor) Discard(orderID kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RolePacker); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.runs[orderID]; !ok {
		return errs.NewObjectNotFoundError("packing run", orderID.String())
	}
	delete(p.runs, orderID)
	return nil
}

// Run returns the in-flight run for an order, if any.
func (p *PackingProcessor) Run(orderID kernel.UUID) (*packing.Process, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[orderID]
	return run, ok
}

func (p *PackingProcessor) run(orderID kernel.UUID) (*packing.Process, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("packing run", orderID.String())
	}
	return run, nil
}
