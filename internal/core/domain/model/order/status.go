package order

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed forward-only sequence to ensure
// orders follow the four-station fulfillment workflow.
//
// State transitions:
//
//	pending ──> intake_review ──> picked ──> packed ──> shipped
//
// Each transition must target the immediate successor of the current status;
// there is no skipping and no regression. Re-opening a shipped order is not
// supported.
//
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for intake review.
	Pending

	// IntakeReview indicates the intake operator has accepted the order for
	// processing. Orders in this status are available to pickers.
	IntakeReview

	// Picked indicates every line item has been picked.
	// Orders in this status are available to packers.
	Picked

	// Packed indicates every line item has been packed and verified.
	// Orders in this status are available to drivers.
	Packed

	// Shipped indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Shipped
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Pending:      "pending",
		IntakeReview: "intake_review",
		Picked:       "picked",
		Packed:       "packed",
		Shipped:      "shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "pending",
		IntakeReview: "intake_review",
		Picked:       "picked",
		Packed:       "packed",
		Shipped:      "shipped",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending, intake_review, picked, packed, shipped.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the immediate successor of the status in the fixed sequence.
// The second return value is false if the status is terminal (Shipped) or
// invalid.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return IntakeReview, true
	case IntakeReview:
		return Picked, true
	case Picked:
		return Packed, true
	case Packed:
		return Shipped, true
	default:
		return Unknown, false
	}
}

// Advance transitions the status to nextStatus.
//
// The transition is valid only when nextStatus is the immediate successor of
// the current status in the fixed sequence. Any other target, including a
// regression or a skip, returns an IllegalTransitionError.
//
// Returns:
//   - (nextStatus, nil) on valid transition
//   - (Unknown, error) if the transition is not allowed
func (s Status) Advance(nextStatus Status) (Status, error) {
	if err := nextStatus.Validate(); err != nil {
		return Unknown, err
	}

	successor, ok := s.Next()
	if !ok || successor != nextStatus {
		return Unknown, errs.NewIllegalTransitionError("status", s.String(), nextStatus.String())
	}

	return nextStatus, nil
}
