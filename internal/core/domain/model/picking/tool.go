package picking

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// ToolKind identifies the handling tool a picker works an order with.
// The tool recommendation engine maps an order's aggregate load to one of
// these kinds; the picker's actual choice is advisory and never blocks work.
type ToolKind int

const (
	// ToolUnknown represents an invalid or not-yet-selected tool.
	ToolUnknown ToolKind = iota

	// ToolHandTruck is the light tool, for loads up to 50 units.
	ToolHandTruck

	// ToolPalletJack is the medium tool, for loads up to 200 units.
	ToolPalletJack

	// ToolForklift is the heavy tool, for loads above 200 units.
	ToolForklift
)

// getToolKindStrings returns a map of ToolKind values to their string
// representations.
func getToolKindStrings() map[ToolKind]string {
	return map[ToolKind]string{
		ToolUnknown:    "unknown",
		ToolHandTruck:  "hand_truck",
		ToolPalletJack: "pallet_jack",
		ToolForklift:   "forklift",
	}
}

// Validate checks if the ToolKind value is a selectable tool.
func (k ToolKind) Validate() error {
	if k != ToolHandTruck && k != ToolPalletJack && k != ToolForklift {
		return errs.NewValueIsInvalidErrorWithCause("tool",
			fmt.Errorf("%d is not a valid tool kind", k))
	}
	return nil
}

// String returns the snake_case name of the tool kind.
// Implements the fmt.Stringer interface.
func (k ToolKind) String() string {
	if str, ok := getToolKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable tool name shown to trainees.
func (k ToolKind) Label() string {
	switch k {
	case ToolHandTruck:
		return "Hand Truck"
	case ToolPalletJack:
		return "Pallet Jack"
	case ToolForklift:
		return "Forklift"
	default:
		return "Unknown"
	}
}
