package packing

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// PackagingKind identifies the container an order is packed into.
type PackagingKind int

const (
	// PackagingUnknown represents an invalid or not-yet-selected packaging.
	PackagingUnknown PackagingKind = iota

	// PackagingBox is a cardboard box.
	PackagingBox

	// PackagingBag is a reusable bag.
	PackagingBag

	// PackagingWrap is protective film wrap.
	PackagingWrap
)

// getPackagingKindStrings returns a map of PackagingKind values to their
// string representations.
func getPackagingKindStrings() map[PackagingKind]string {
	return map[PackagingKind]string{
		PackagingUnknown: "unknown",
		PackagingBox:     "box",
		PackagingBag:     "bag",
		PackagingWrap:    "wrap",
	}
}

// Validate checks if the PackagingKind value is a selectable packaging.
func (k PackagingKind) Validate() error {
	if k != PackagingBox && k != PackagingBag && k != PackagingWrap {
		return errs.NewValueIsInvalidErrorWithCause("packaging",
			fmt.Errorf("%d is not a valid packaging kind", k))
	}
	return nil
}

// String returns the string representation of the packaging kind.
// Implements the fmt.Stringer interface.
func (k PackagingKind) String() string {
	if str, ok := getPackagingKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable packaging name shown to trainees.
func (k PackagingKind) Label() string {
	switch k {
	case PackagingBox:
		return "Box"
	case PackagingBag:
		return "Bag"
	case PackagingWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}
