package order

import (
	"errors"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

var (
	// ErrCustomerIsRequired is returned when attempting to create an order
	// without a customer name.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	// ErrItemsAreRequired is returned when attempting to create an order with
	// no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's request for one or more line items, tracked
// through the fixed four-station fulfillment pipeline. It is the aggregate
// root that manages the order lifecycle from creation through shipment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Must have at least one valid line item
//   - Total equals the sum of line totals at creation time and is immutable
//     thereafter
//   - Status only advances forward through the fixed sequence
//     pending → intake_review → picked → packed → shipped
//   - Can only be created through the NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Station sub-process state never
// lives here; each station processor owns its own in-flight records and only
// writes back through Advance and AssignWorker.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the ordering customer's name
	customer string

	// items are the ordered line items (never empty)
	items []*LineItem

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp; creation order defines the
	// default listing order
	createdAt time.Time

	// total is the sum of line totals, fixed at creation
	total float64

	// workers records which session handled each station (nil if not yet
	// assigned): intake operator, picker, packer, driver
	workers map[session.Role]kernel.UUID

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order.
//
// The order is created in Pending status with its total computed as the sum
// of line totals. The caller supplies the creation instant so the store, not
// the aggregate, owns the clock.
func NewOrder(id kernel.UUID, customer string, items []*LineItem, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: createdAt,
		workers:   make(map[session.Role]kernel.UUID),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.total += item.Total()
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the ordering customer's name.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns the ordered line items.
// The returned slice must not be mutated by callers.
func (o *Order) Items() []*LineItem {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the order total computed at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// Worker returns the session that handled the given station role.
// The second return value is false if no worker has been assigned for it.
func (o *Order) Worker(role session.Role) (kernel.UUID, bool) {
	id, ok := o.workers[role]
	return id, ok
}

// Advance transitions the order to nextStatus.
//
// The transition succeeds only when nextStatus is the immediate successor of
// the current status in the fixed sequence; anything else returns an
// IllegalTransitionError and leaves the order unchanged.
func (o *Order) Advance(nextStatus Status) error {
	newStatus, err := o.status.Advance(nextStatus)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignWorker records which session handled a station. It does not affect
// the order's status. The customer role is not a station and is rejected.
func (o *Order) AssignWorker(role session.Role, workerID kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == session.RoleCustomer {
		return errs.NewValueIsInvalidError("station role")
	}
	if err := workerID.Validate(); err != nil {
		return err
	}

	o.workers[role] = workerID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
