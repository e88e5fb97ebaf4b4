package stations

import (
	"context"
	"sync"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/picking"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/domain/services"
	"atlas/internal/core/ports"
	"atlas/internal/pkg/errs"
)

// PickingProcessor runs the picking station. It holds one in-flight picking
// run per order; a second start for the same order before completion
// conflicts.
type PickingProcessor struct {
	mu sync.Mutex

	store       ports.OrderStore
	roles       RoleChecker
	recommender services.ToolRecommender

	// runs holds in-flight picking runs keyed by order id
	runs map[kernel.UUID]*picking.Process
}

// NewPickingProcessor creates a picking station processor.
func NewPickingProcessor(store ports.OrderStore, roles RoleChecker, recommender services.ToolRecommender) *PickingProcessor {
	return &PickingProcessor{
		store:       store,
		roles:       roles,
		recommender: recommender,
		runs:        make(map[kernel.UUID]*picking.Process),
	}
}

// Start opens a picking run for an order in intake review and returns it
// together with the recommended tool for the order's load.
//
// Only a logged-in picker may start a run. Starting a second run for the
// same order before the first completes returns a ConflictError.
func (p *PickingProcessor) Start(ctx context.Context, orderID kernel.UUID) (*picking.Process, picking.ToolKind, error) {
	picker, err := p.roles.RequireRole(session.RolePicker)
	if err != nil {
		return nil, picking.ToolUnknown, err
	}

	aggregate, err := p.store.Get(ctx, orderID)
	if err != nil {
		return nil, picking.ToolUnknown, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.runs[orderID]; ok {
		return nil, picking.ToolUnknown, errs.NewConflictError("picking run", orderID.String())
	}

	run, err := picking.NewProcess(kernel.NewUUID(), aggregate, picker.ID(), time.Now())
	if err != nil {
		return nil, picking.ToolUnknown, err
	}

	p.runs[orderID] = run
	return run, p.recommender.Recommend(aggregate), nil
}

// SelectTool commits the picker to a tool and unlocks the checklist. The
// returned flag and feedback compare the choice against the recommendation;
// a mismatch is advice for the trainee, never an error.
func (p *PickingProcessor) SelectTool(ctx context.Context, orderID kernel.UUID, tool picking.ToolKind) (bool, string, error) {
	if _, err := p.roles.RequireRole(session.RolePicker); err != nil {
		return false, "", err
	}

	aggregate, err := p.store.Get(ctx, orderID)
	if err != nil {
		return false, "", err
	}

	run, err := p.run(orderID)
	if err != nil {
		return false, "", err
	}

	if err := run.SelectTool(tool); err != nil {
		return false, "", err
	}

	correct, feedback := p.recommender.ValidateChoice(aggregate, tool)
	return correct, feedback, nil
}

// MarkItemPicked marks one checklist line as collected. Re-marking a picked
// line is a no-op.
func (p *PickingProcessor) MarkItemPicked(_ context.Context, orderID, lineItemID kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RolePicker); err != nil {
		return err
	}

	run, err := p.run(orderID)
	if err != nil {
		return err
	}
	return run.MarkItemPicked(lineItemID)
}

// Complete closes the run once every checklist line is picked, advances the
// order to picked, records the picker as its picking worker and discards the
// run record.
func (p *PickingProcessor) Complete(ctx context.Context, orderID kernel.UUID) error {
	picker, err := p.roles.RequireRole(session.RolePicker)
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

	if err := p.store.Transition(ctx, orderID, order.Picked); err != nil {
		return err
	}
	if err := p.store.AssignWorker(ctx, orderID, session.RolePicker, picker.ID()); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.runs, orderID)
	return nil
}

// Discard abandons an in-flight run without advancing the order. The order
// stays in intake review and can be started again later.
func (p *PickingProcessor) Discard(orderID kernel.UUID) error {
	if _, err := p.roles.RequireRole(session.RolePicker); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.runs[orderID]; !ok {
		return errs.NewObjectNotFoundError("picking run", orderID.String())
	}
	delete(p.runs, orderID)
	return nil
}

// Run returns the in-flight run for an order, if any.
func (p *PickingProcessor) Run(orderID kernel.UUID) (*picking.Process, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[orderID]
	return run, ok
}

func (p *PickingProcessor) run(orderID kernel.UUID) (*picking.Process, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("picking run", orderID.String())
	}
	return run, nil
}
