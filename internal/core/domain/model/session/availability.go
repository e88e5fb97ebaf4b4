package session

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// Availability represents a worker's availability state.
//
// State transitions:
//
//	available ──> busy        (session activated)
//	busy      ──> available   (session ended)
//	available <─> on_break    (managed outside the login flow)
//
// The session manager forces the active session to busy; ending it restores
// available.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Available means the worker can be activated.
	Available

	// Busy means the worker holds the active session.
	Busy

	// OnBreak means the worker is off the floor and cannot be activated.
	OnBreak
)

// getAvailabilityStrings returns a map of Availability values to their string
// representations.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Available:           "available",
		Busy:                "busy",
		OnBreak:             "on_break",
	}
}

// getValidAvailabilityStrings returns a map of only valid Availability values.
func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Available: "available",
		Busy:      "busy",
		OnBreak:   "on_break",
	}
}

// Validate checks if the Availability value is valid.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the snake_case name of the availability state.
// Implements the fmt.Stringer interface.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}
