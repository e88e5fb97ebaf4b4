package picking

import (
	"errors"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

var (
	// ErrProcessIsNotConstructed is returned when a Process instance was not
	// created through the NewProcess factory method.
	ErrProcessIsNotConstructed = errors.New("picking Process must be created via NewProcess constructor")
)

// ChecklistItem is one line of the picking checklist. It mirrors an order
// line item plus the picked flag the picker toggles at the shelf.
type ChecklistItem struct {
	// lineItemID identifies the order line this entry tracks
	lineItemID kernel.UUID

	// name is the product name shown on the checklist
	name string

	// quantity is the unit count to pick
	quantity int

	// location is the shelf the picker walks to
	location kernel.ShelfLocation

	// picked is set once the line was collected; it never unsets
	picked bool
}

// LineItemID returns the identifier of the order line this entry tracks.
func (c *ChecklistItem) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Name returns the product name.
func (c *ChecklistItem) Name() string {
	return c.name
}

// Quantity returns the unit count to pick.
func (c *ChecklistItem) Quantity() int {
	return c.quantity
}

// Location returns the shelf the picker walks to.
func (c *ChecklistItem) Location() kernel.ShelfLocation {
	return c.location
}

// Picked reports whether the line was already collected.
func (c *ChecklistItem) Picked() bool {
	return c.picked
}

// Process is the in-flight picking run for a single order. It owns the tool
// selection gate and the per-item checklist; the order aggregate itself never
// sees this state. A run starts in SelectingTool, unlocks its checklist when
// a tool is committed, and can only complete once every line is picked.
type Process struct {
	// id is the unique identifier for the picking run
	id kernel.UUID

	// orderID is the order being picked; one run per order at a time
	orderID kernel.UUID

	// customer is the ordering customer's name, carried for display
	customer string

	// pickerID is the session that started the run
	pickerID kernel.UUID

	// items is the checklist in order line order
	items []*ChecklistItem

	// byItem indexes items by line item id
	byItem map[kernel.UUID]int

	// tool is the committed tool, ToolUnknown until selected
	tool ToolKind

	// status is the run state
	status Status

	// startedAt is when the run was started
	startedAt time.Time

	// guard ensures the process was created via NewProcess
	guard guard.ConstructorGuard
}

// NewProcess starts a picking run for an order. This is the only way to
// create a valid Process.
//
// The order must currently be in intake review; any other status returns an
// IllegalTransitionError. The run starts in SelectingTool with an unpicked
// checklist built from the order's line items.
func NewProcess(id kernel.UUID, o *order.Order, pickerID kernel.UUID, startedAt time.Time) (*Process, error) {
	if err := errors.Join(id.Validate(), pickerID.Validate()); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.IntakeReview {
		return nil, errs.NewIllegalTransitionError("order status",
			o.Status().String(), order.Picked.String())
	}

	p := &Process{
		id:        id,
		orderID:   o.ID(),
		customer:  o.Customer(),
		pickerID:  pickerID,
		byItem:    make(map[kernel.UUID]int),
		tool:      ToolUnknown,
		status:    SelectingTool,
		startedAt: startedAt,
		guard:     guard.NewConstructorGuard(),
	}

	for i, item := range o.Items() {
		p.items = append(p.items, &ChecklistItem{
			lineItemID: item.ID(),
			name:       item.Name(),
			quantity:   item.Quantity(),
			location:   item.Location(),
		})
		p.byItem[item.ID()] = i
	}

	return p, nil
}

// Validate ensures the Process instance was properly constructed through
// NewProcess.
func (p *Process) Validate() error {
	if p == nil {
		return ErrProcessIsNotConstructed
	}
	return p.guard.Validate(ErrProcessIsNotConstructed)
}

// ID returns the run's unique identifier.
func (p *Process) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order being picked.
func (p *Process) OrderID() kernel.UUID {
	return p.orderID
}

// Customer returns the ordering customer's name.
func (p *Process) Customer() string {
	return p.customer
}

// PickerID returns the session that started the run.
func (p *Process) PickerID() kernel.UUID {
	return p.pickerID
}

// Items returns the checklist in order line order.
// The returned slice must not be mutated by callers.
func (p *Process) Items() []*ChecklistItem {
	return p.items
}

// Tool returns the committed tool, ToolUnknown until one is selected.
func (p *Process) Tool() ToolKind {
	return p.tool
}

// Status returns the run state.
func (p *Process) Status() Status {
	return p.status
}

// StartedAt returns when the run was started.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// SelectTool commits the picker to a tool and unlocks the checklist. The
// choice is free; whether it matches the recommendation is advisory only.
// Selecting again after the run moved past SelectingTool is an illegal
// transition.
func (p *Process) SelectTool(tool ToolKind) error {
	if err := tool.Validate(); err != nil {
		return err
	}
	if p.status != SelectingTool {
		return errs.NewIllegalTransitionError("picking status",
			p.status.String(), InProgress.String())
	}

	p.tool = tool
	p.status = InProgress
	return nil
}

// MarkItemPicked marks a checklist line as collected.
//
// The checklist is locked until a tool is selected. Marking a line that is
// already picked is a no-op, not an error. An unknown line item id returns an
// ObjectNotFoundError.
func (p *Process) MarkItemPicked(lineItemID kernel.UUID) error {
	if p.status != InProgress {
		return errs.NewIllegalTransitionError("picking status",
			p.status.String(), InProgress.String())
	}

	i, ok := p.byItem[lineItemID]
	if !ok {
		return errs.NewObjectNotFoundError("line item id", lineItemID)
	}

	p.items[i].picked = true
	return nil
}

// PickedCount returns how many checklist lines were collected so far.
func (p *Process) PickedCount() int {
	count := 0
	for _, item := range p.items {
		if item.picked {
			count++
		}
	}
	return count
}

// ReadyToComplete reports whether every checklist line was collected.
func (p *Process) ReadyToComplete() bool {
	return p.status == InProgress && p.PickedCount() == len(p.items)
}

// Complete closes the run. It fails with an IllegalTransitionError while any
// checklist line is still unpicked or no tool was selected.
func (p *Process) Complete() error {
	if !p.ReadyToComplete() {
		return errs.NewIllegalTransitionError("picking status",
			p.status.String(), Completed.String())
	}

	p.status = Completed
	return nil
}
