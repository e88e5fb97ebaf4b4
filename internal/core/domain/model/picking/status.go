package picking

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// Status is the state of a picking run for a single order.
type Status int

const (
	// StatusUnknown represents an invalid picking status.
	StatusUnknown Status = iota

	// SelectingTool means the picker has not committed to a tool yet.
	// The checklist is locked until a tool is selected.
	SelectingTool

	// InProgress means a tool was selected and items are being picked.
	InProgress

	// Completed means every checklist item was picked and the run closed.
	Completed
)

// getStatusStrings returns a map of Status values to their string
// representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		SelectingTool: "selecting_tool",
		InProgress:    "in_progress",
		Completed:     "completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != SelectingTool && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("picking status",
			fmt.Errorf("%d is not a valid picking status", s))
	}
	return nil
}

// String returns the string representation of the picking status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
