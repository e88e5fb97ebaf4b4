package stations

import (
	"context"
	"sync"
	"time"

	"atlas/internal/core/domain/model/delivery"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/ports"
	"atlas/internal/pkg/errs"
)

// DeliveryProcessor runs the delivery station. It holds one in-flight
// delivery run per order. Each stage change is an explicit driver action;
// reaching the delivered stage ships the order and discards the run record.
type DeliveryProcessor struct {
	mu sync.Mutex

	store ports.OrderStore
	roles RoleChecker

	// runs holds in-flight delivery runs keyed by order id
	runs map[kernel.UUID]*delivery.Process
}

// NewDeliveryProcessor creates a delivery station processor.
func NewDeliveryProcessor(store ports.OrderStore, roles RoleChecker) *DeliveryProcessor {
	return &DeliveryProcessor{
		store: store,
		roles: roles,
		runs:  make(map[kernel.UUID]*delivery.Process),
	}
}

// Start opens a delivery run for a packed order, drawing a carrier, vehicle,
// address and estimate.
//
// Only a logged-in driver may start a run. Starting a second run for the
// same order before it delivers returns a ConflictError.
func (p *DeliveryProcessor) Start(ctx context.Context, orderID kernel.UUID) (*delivery.Process, error) {
	driver, err := p.roles.RequireRole(session.RoleDriver)
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
		return nil, errs.NewConflictError("delivery run", orderID.String())
	}

	run, err := delivery.NewProcess(kernel.NewUUID(), aggregate, driver.ID(),
		delivery.NewRandomAssignment(), time.Now())
	if err != nil {
		return nil, err
	}

	p.runs[orderID] = run
	return run, nil
}

// Advance moves a run to the next stage. Reaching the delivered stage ships
// the order, records the driver as its delivery worker and discards the run
// record.
func (p *DeliveryProcessor) Advance(ctx context.Context, orderID kernel.UUID, nextStage delivery.Stage) error {
	driver, err := p.roles.RequireRole(session.RoleDriver)
	if err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}

	if err := run.Advance(nextStage); err != nil {
		return err
	}

	if !run.Delivered() {
		return nil
	}

	if err := p.store.Transition(ctx, orderID, order.Shipped); err != nil {
		return err
	}
	if err := p.store.AssignWorker(ctx, orderID, session.RoleDriver, driver.ID()); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.runs, orderID)
	return nil
}

// AddNote appends a free-form driver remark to a run.
func (p *DeliveryProcessor) AddNote(orderID kernel.UUID, note string) error {
	if _, err := p.roles.RequireRole(session.RoleDriver); err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}
	return run.AddNote(note)
}

// Discard abandons an in-flight run without advancing the order.
func (p *DeliveryProcessor) Discard(orderID kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RoleDriver); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.runs[orderID]; !ok {
		return errs.NewObjectNotFoundError("delivery run", orderID.String())
	}
	delete(p.runs, orderID)
	return nil
}

// Run returns the in-flight run for an order, if any.
func (p *DeliveryProcessor) Run(orderID kernel.UUID) (*delivery.Process, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[orderID]
	return run, ok
}

func (p *DeliveryProcessor) run(orderID kernel.UUID) (*delivery.Process, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery run", orderID.String())
	}
	return run, nil
}
