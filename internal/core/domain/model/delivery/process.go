package delivery

import (
	"errors"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
	"atlas/internal/pkg/timefmt"
)

var (
	// ErrNoteIsRequired is returned when attempting to add an empty note.
	ErrNoteIsRequired = errs.NewValueIsRequiredError("note")
	// ErrProcessIsNotConstructed is returned when a Process instance was not
	// created through the NewProcess factory method.
	ErrProcessIsNotConstructed = errors.New("delivery Process must be created via NewProcess constructor")
)

// Process is the in-flight delivery run for a single order. The carrier,
// vehicle, address and estimate are fixed at start; the driver advances the
// stage one explicit action at a time. Elapsed time is display only and
// never advances state.
type Process struct {
	// id is the unique identifier for the delivery run
	id kernel.UUID

	// orderID is the order being delivered; one run per order at a time
	orderID kernel.UUID

	// customer is the ordering customer's name, carried for display
	customer string

	// driverID is the session that started the run
	driverID kernel.UUID

	// assignment is the carrier, vehicle, address and estimate fixed at start
	assignment Assignment

	// stage is the run state
	stage Stage

	// notes are free-form driver remarks in the order they were added
	notes []string

	// startedAt is when the run was started
	startedAt time.Time

	// guard ensures the process was created via NewProcess
	guard guard.ConstructorGuard
}

// NewProcess starts a delivery run for an order. This is the only way to
// create a valid Process.
//
// The order must currently be packed; any other status returns an
// IllegalTransitionError. The run starts in Assigned.
func NewProcess(
	id kernel.UUID,
	o *order.Order,
	driverID kernel.UUID,
	assignment Assignment,
	startedAt time.Time,
) (*Process, error) {
	if err := errors.Join(id.Validate(), driverID.Validate(), assignment.Validate()); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Packed {
		return nil, errs.NewIllegalTransitionError("order status",
			o.Status().String(), order.Shipped.String())
	}

	return &Process{
		id:         id,
		orderID:    o.ID(),
		customer:   o.Customer(),
		driverID:   driverID,
		assignment: assignment,
		stage:      Assigned,
		startedAt:  startedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
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

// OrderID returns the order being delivered.
func (p *Process) OrderID() kernel.UUID {
	return p.orderID
}

// Customer returns the ordering customer's name.
func (p *Process) Customer() string {
	return p.customer
}

// DriverID returns the session that started the run.
func (p *Process) DriverID() kernel.UUID {
	return p.driverID
}

// Assignment returns the carrier, vehicle, address and estimate fixed at
// start.
func (p *Process) Assignment() Assignment {
	return p.assignment
}

// Stage returns the run state.
func (p *Process) Stage() Stage {
	return p.stage
}

// Notes returns driver remarks in the order they were added.
// The returned slice must not be mutated by callers.
func (p *Process) Notes() []string {
	return p.notes
}

// StartedAt returns when the run was started.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// Advance moves the run to nextStage. Only the immediate successor is
// reachable; anything else returns an IllegalTransitionError and leaves the
// run unchanged.
func (p *Process) Advance(nextStage Stage) error {
	newStage, err := p.stage.Advance(nextStage)
	if err != nil {
		return err
	}

	p.stage = newStage
	return nil
}

// AddNote appends a free-form driver remark.
func (p *Process) AddNote(note string) error {
	if note == "" {
		return ErrNoteIsRequired
	}
	p.notes = append(p.notes, note)
	return nil
}

// Delivered reports whether the run reached its terminal stage.
func (p *Process) Delivered() bool {
	return p.stage == Delivered
}

// Elapsed returns the time since the run started.
func (p *Process) Elapsed(now time.Time) time.Duration {
	return now.Sub(p.startedAt)
}

// ElapsedDisplay formats the elapsed time as "m:ss" for station screens.
func (p *Process) ElapsedDisplay(now time.Time) string {
	return timefmt.MinutesSeconds(p.Elapsed(now))
}

// Progress returns the display-only completion percentage derived from the
// stage: 0 assigned, 40 en route, 80 arriving, 100 delivered.
func (p *Process) Progress() int {
	switch p.stage {
	case EnRoute:
		return 40
	case Arriving:
		return 80
	case Delivered:
		return 100
	default:
		return 0
	}
}
