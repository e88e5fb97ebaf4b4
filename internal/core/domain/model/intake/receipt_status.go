package intake

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// ReceiptStatus represents the state of an incoming merchandise receipt.
//
// State transitions:
//
//	received ──> verified ──> stocked
//
// The flow is informational only: it never gates order transitions.
type ReceiptStatus int

const (
	// ReceiptUnknown represents an invalid or undefined receipt status.
	ReceiptUnknown ReceiptStatus = iota

	// Received is the initial state after the merchandise arrives from the
	// supplier.
	Received

	// Verified means the operator confirmed product and quantity against the
	// supplier manifest.
	Verified

	// Stocked means the merchandise has been placed on its shelf.
	// This is a final state.
	Stocked
)

// getReceiptStatusStrings returns a map of ReceiptStatus values to their
// string representations.
func getReceiptStatusStrings() map[ReceiptStatus]string {
	return map[ReceiptStatus]string{
		ReceiptUnknown: "unknown",
		Received:       "received",
		Verified:       "verified",
		Stocked:        "stocked",
	}
}

// Validate checks if the ReceiptStatus value is valid.
func (s ReceiptStatus) Validate() error {
	if s != Received && s != Verified && s != Stocked {
		return errs.NewValueIsInvalidErrorWithCause("receipt status",
			fmt.Errorf("%d is not a valid receipt status", s))
	}
	return nil
}

// String returns the snake_case name of the receipt status.
// Implements the fmt.Stringer interface.
func (s ReceiptStatus) String() string {
	if str, ok := getReceiptStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Verify transitions the status to Verified.
//
// Valid transitions:
//   - received -> verified
//
// Returns an IllegalTransitionError for any other starting state.
func (s ReceiptStatus) Verify() (ReceiptStatus, error) {
	if s != Received {
		return ReceiptUnknown, errs.NewIllegalTransitionError("receipt status", s.String(), Verified.String())
	}
	return Verified, nil
}

// Stock transitions the status to Stocked.
//
// Valid transitions:
//   - verified -> stocked
//
// Returns an IllegalTransitionError for any other starting state.
func (s ReceiptStatus) Stock() (ReceiptStatus, error) {
	if s != Verified {
		return ReceiptUnknown, errs.NewIllegalTransitionError("receipt status", s.String(), Stocked.String())
	}
	return Stocked, nil
}
