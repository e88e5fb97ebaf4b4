package intake

import (
	"errors"
	"fmt"
	"time"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

var (
	// ErrProductIsRequired is returned when attempting to record a receipt
	// without a product name.
	ErrProductIsRequired = errs.NewValueIsRequiredError("product")
	// ErrSupplierIsRequired is returned when attempting to record a receipt
	// without a supplier name.
	ErrSupplierIsRequired = errs.NewValueIsRequiredError("supplier")
	// ErrReceiptIsNotConstructed is returned when using an improperly
	// initialized Receipt.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")
)

// Receipt represents one incoming merchandise delivery tracked at the intake
// station. Receipts are independent of customer orders: they record supplier
// stock arriving at the warehouse and move received -> verified -> stocked.
type Receipt struct {
	// id is the unique identifier for the receipt
	id kernel.UUID

	// product is the received product name
	product string

	// quantity is the received unit count (always > 0)
	quantity int

	// supplier is the delivering supplier's name
	supplier string

	// location is the shelf the merchandise is stocked on
	location kernel.ShelfLocation

	// receivedAt is the arrival timestamp
	receivedAt time.Time

	// status is the receipt's current state
	status ReceiptStatus

	// guard ensures the receipt was created via NewReceipt
	guard guard.ConstructorGuard
}

// NewReceipt creates a new Receipt in Received status with validation.
// This is the only way to create a valid Receipt.
func NewReceipt(
	id kernel.UUID,
	product string,
	quantity int,
	supplier string,
	location kernel.ShelfLocation,
	receivedAt time.Time,
) (*Receipt, error) {
	r := &Receipt{
		status:     Received,
		receivedAt: receivedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProduct(product),
		r.setQuantity(quantity),
		r.setSupplier(supplier),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Receipt was properly constructed through NewReceipt.
func (r *Receipt) Validate() error {
	if r == nil {
		return ErrReceiptIsNotConstructed
	}
	return r.guard.Validate(ErrReceiptIsNotConstructed)
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID {
	return r.id
}

// Product returns the received product name.
func (r *Receipt) Product() string {
	return r.product
}

// Quantity returns the received unit count.
func (r *Receipt) Quantity() int {
	return r.quantity
}

// Supplier returns the delivering supplier's name.
func (r *Receipt) Supplier() string {
	return r.supplier
}

// Location returns the shelf the merchandise is stocked on.
func (r *Receipt) Location() kernel.ShelfLocation {
	return r.location
}

// ReceivedAt returns the arrival timestamp.
func (r *Receipt) ReceivedAt() time.Time {
	return r.receivedAt
}

// Status returns the receipt's current state.
func (r *Receipt) Status() ReceiptStatus {
	return r.status
}

// Verify marks the receipt as checked against the supplier manifest.
// Only a received receipt can be verified.
func (r *Receipt) Verify() error {
	newStatus, err := r.status.Verify()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Stock marks the receipt as placed on its shelf.
// Only a verified receipt can be stocked; Stocked is final.
func (r *Receipt) Stock() error {
	newStatus, err := r.status.Stock()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setProduct(product string) error {
	if product == "" {
		return ErrProductIsRequired
	}
	r.product = product
	return nil
}

func (r *Receipt) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *Receipt) setSupplier(supplier string) error {
	if supplier == "" {
		return ErrSupplierIsRequired
	}
	r.supplier = supplier
	return nil
}

func (r *Receipt) setLocation(location kernel.ShelfLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
