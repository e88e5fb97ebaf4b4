package order

import (
	"errors"
	"fmt"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

var (
	// ErrItemNameIsRequired is returned when attempting to create a line item
	// without a product name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrLineItemIsNotConstructed is returned when using an improperly
	// initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem represents one ordered product line within an order.
//
// Invariants:
//   - Quantity is always positive
//   - Unit price is always non-negative
//   - The line total (quantity × unit price) is fixed at creation time;
//     price changes after creation are out of scope
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// name is the product name
	name string

	// quantity is the ordered unit count (always > 0)
	quantity int

	// unitPrice is the price per unit at creation time (always >= 0)
	unitPrice float64

	// location is the warehouse shelf the product is picked from
	location kernel.ShelfLocation

	// category is the product category label
	category string

	// guard ensures the line item was created via NewLineItem
	guard guard.ConstructorGuard
}

// NewLineItem creates a new LineItem with validation. This is the only way to
// create a valid LineItem.
func NewLineItem(
	id kernel.UUID,
	name string,
	quantity int,
	unitPrice float64,
	location kernel.ShelfLocation,
	category string,
) (*LineItem, error) {
	item := &LineItem{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setLocation(location),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the LineItem was properly constructed through NewLineItem.
func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i *LineItem) ID() kernel.UUID {
	return i.id
}

// Name returns the product name.
func (i *LineItem) Name() string {
	return i.name
}

// Quantity returns the ordered unit count.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at creation time.
func (i *LineItem) UnitPrice() float64 {
	return i.unitPrice
}

// Location returns the warehouse shelf the product is picked from.
func (i *LineItem) Location() kernel.ShelfLocation {
	return i.location
}

// Category returns the product category label.
func (i *LineItem) Category() string {
	return i.category
}

// Total returns the line total: quantity × unit price.
func (i *LineItem) Total() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%.2f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setLocation(location kernel.ShelfLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	i.location = location
	return nil
}
