package packing

import (
	"errors"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

// unitWeightKg is the display-only weight assumed per unit. It feeds the
// estimated package weight shown at the station and nothing else.
const unitWeightKg = 0.5

var (
	// ErrProcessIsNotConstructed is returned when a Process instance was not
	// created through the NewProcess factory method.
	ErrProcessIsNotConstructed = errors.New("packing Process must be created via NewProcess constructor")
)

// PackItem is one order line inside a packing run with its two-step
// pack-then-verify state.
type PackItem struct {
	// lineItemID identifies the order line this entry tracks
	lineItemID kernel.UUID

	// name is the product name shown at the station
	name string

	// quantity is the unit count to pack
	quantity int

	// state is the pack-then-verify progress; verified is terminal
	state ItemState
}

// LineItemID returns the identifier of the order line this entry tracks.
func (p *PackItem) LineItemID() kernel.UUID {
	return p.lineItemID
}

// Name returns the product name.
func (p *PackItem) Name() string {
	return p.name
}

// Quantity returns the unit count to pack.
func (p *PackItem) Quantity() int {
	return p.quantity
}

// State returns the item's pack-then-verify progress.
func (p *PackItem) State() ItemState {
	return p.state
}

// Process is the in-flight packing run for a single order. The packer first
// commits to a container, then works every item through packed and verified;
// the run can only complete once all items are verified.
type Process struct {
	// id is the unique identifier for the packing run
	id kernel.UUID

	// orderID is the order being packed; one run per order at a time
	orderID kernel.UUID

	// customer is the ordering customer's name, carried for display
	customer string

	// packerID is the session that started the run
	packerID kernel.UUID

	// items is the item list in order line order
	items []*PackItem

	// byItem indexes items by line item id
	byItem map[kernel.UUID]int

	// packaging is the committed container, PackagingUnknown until selected
	packaging PackagingKind

	// status is the run state
	status Status

	// startedAt is when the run was started
	startedAt time.Time

	// guard ensures the process was created via NewProcess
	guard guard.ConstructorGuard
}

// NewProcess starts a packing run for an order. This is the only way to
// create a valid Process.
//
// The order must currently be picked; any other status returns an
// IllegalTransitionError. The run starts in SelectingPackaging with every
// item pending.
func NewProcess(id kernel.UUID, o *order.Order, packerID kernel.UUID, startedAt time.Time) (*Process, error) {
	if err := errors.Join(id.Validate(), packerID.Validate()); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Picked {
		return nil, errs.NewIllegalTransitionError("order status",
			o.Status().String(), order.Packed.String())
	}

	p := &Process{
		id:        id,
		orderID:   o.ID(),
		customer:  o.Customer(),
		packerID:  packerID,
		byItem:    make(map[kernel.UUID]int),
		packaging: PackagingUnknown,
		status:    SelectingPackaging,
		startedAt: startedAt,
		guard:     guard.NewConstructorGuard(),
	}

	for i, item := range o.Items() {
		p.items = append(p.items, &PackItem{
			lineItemID: item.ID(),
			name:       item.Name(),
			quantity:   item.Quantity(),
			state:      ItemPending,
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

// OrderID returns the order being packed.
func (p *Process) OrderID() kernel.UUID {
	return p.orderID
}

// Customer returns the ordering customer's name.
func (p *Process) Customer() string {
	return p.customer
}

// PackerID returns the session that started the run.
func (p *Process) PackerID() kernel.UUID {
	return p.packerID
}

// Items returns the item list in order line order.
// The returned slice must not be mutated by callers.
func (p *Process) Items() []*PackItem {
	return p.items
}

// Packaging returns the committed container, PackagingUnknown until one is
// selected.
func (p *Process) Packaging() PackagingKind {
	return p.packaging
}

// Status returns the run state.
func (p *Process) Status() Status {
	return p.status
}

// StartedAt returns when the run was started.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// EstimatedWeight returns the display-only package weight in kilograms,
// assuming a flat weight per unit across all items.
func (p *Process) EstimatedWeight() float64 {
	units := 0
	for _, item := range p.items {
		units += item.quantity
	}
	return float64(units) * unitWeightKg
}

// SelectPackaging commits the packer to a container and unlocks item work.
// Selecting again after the run moved past SelectingPackaging is an illegal
// transition.
func (p *Process) SelectPackaging(kind PackagingKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if p.status != SelectingPackaging {
		return errs.NewIllegalTransitionError("packing status",
			p.status.String(), InProgress.String())
	}

	p.packaging = kind
	p.status = InProgress
	return nil
}

// MarkItemPacked moves a pending item into the container.
//
// Item work is locked until a packaging is selected. Marking an item that is
// already packed or verified is a no-op, not an error. An unknown line item
// id returns an ObjectNotFoundError.
func (p *Process) MarkItemPacked(lineItemID kernel.UUID) error {
	item, err := p.item(lineItemID)
	if err != nil {
		return err
	}

	if item.state == ItemPending {
		item.state = ItemPacked
	}
	return nil
}

// VerifyItem checks a packed item against its order line.
//
// Verifying an item that is still pending is an illegal transition; an item
// must be packed first. Verifying an already-verified item is a no-op.
func (p *Process) VerifyItem(lineItemID kernel.UUID) error {
	item, err := p.item(lineItemID)
	if err != nil {
		return err
	}

	switch item.state {
	case ItemPending:
		return errs.NewIllegalTransitionError("item state",
			ItemPending.String(), ItemVerified.String())
	case ItemPacked:
		item.state = ItemVerified
	}
	return nil
}

// VerifiedCount returns how many items were verified so far.
func (p *Process) VerifiedCount() int {
	count := 0
	for _, item := range p.items {
		if item.state == ItemVerified {
			count++
		}
	}
	return count
}

// ReadyToComplete reports whether every item was verified.
func (p *Process) ReadyToComplete() bool {
	return p.status == InProgress && p.VerifiedCount() == len(p.items)
}

// Complete closes the run. It fails with an IllegalTransitionError while any
// item is still unverified or no packaging was selected.
func (p *Process) Complete() error {
	if !p.ReadyToComplete() {
		return errs.NewIllegalTransitionError("packing status",
			p.status.String(), Completed.String())
	}

	p.status = Completed
	return nil
}

func (p *Process) item(lineItemID kernel.UUID) (*PackItem, error) {
	if p.status != InProgress {
		return nil, errs.NewIllegalTransitionError("packing status",
			p.status.String(), InProgress.String())
	}

	i, ok := p.byItem[lineItemID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("line item id", lineItemID)
	}
	return p.items[i], nil
}
