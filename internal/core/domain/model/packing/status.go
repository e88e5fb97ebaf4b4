package packing

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// Status is the state of a packing run for a single order.
type Status int

const (
	// StatusUnknown represents an invalid packing status.
	StatusUnknown Status = iota

	// SelectingPackaging means the packer has not committed to a container
	// yet. Item work is locked until a packaging is selected.
	SelectingPackaging

	// InProgress means a packaging was selected and items are being packed
	// and verified.
	InProgress

	// Completed means every item was verified and the run closed.
	Completed
)

// getStatusStrings returns a map of Status values to their string
// representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		SelectingPackaging: "selecting_packaging",
		InProgress:         "in_progress",
		Completed:          "completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != SelectingPackaging && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("packing status",
			fmt.Errorf("%d is not a valid packing status", s))
	}
	return nil
}

// String returns the string representation of the packing status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ItemState is the per-item progress within a packing run. Each item is
// packed first and then verified; verified is terminal.
type ItemState int

const (
	// ItemStateUnknown represents an invalid item state.
	ItemStateUnknown ItemState = iota

	// ItemPending means the item has not been packed yet.
	ItemPending

	// ItemPacked means the item is in the container but not verified.
	ItemPacked

	// ItemVerified means the item was checked against the order line.
	ItemVerified
)

// getItemStateStrings returns a map of ItemState values to their string
// representations.
func getItemStateStrings() map[ItemState]string {
	return map[ItemState]string{
		ItemStateUnknown: "unknown",
		ItemPending:      "pending",
		ItemPacked:       "packed",
		ItemVerified:     "verified",
	}
}

// Validate checks if the ItemState value is valid.
func (s ItemState) Validate() error {
	if s != ItemPending && s != ItemPacked && s != ItemVerified {
		return errs.NewValueIsInvalidErrorWithCause("item state",
			fmt.Errorf("%d is not a valid item state", s))
	}
	return nil
}

// String returns the string representation of the item state.
// Implements the fmt.Stringer interface.
func (s ItemState) String() string {
	if str, ok := getItemStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}
