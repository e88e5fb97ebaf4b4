package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"

	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

const (
	// shelfAisleMin is the first aisle letter in the warehouse.
	shelfAisleMin = 'A'
	// shelfAisleMax is the last aisle letter in the warehouse.
	shelfAisleMax = 'E'
	// shelfRackMax is the highest rack number inside an aisle.
	shelfRackMax = 3
	// shelfSlotMax is the highest slot number inside a rack.
	shelfSlotMax = 6
)

// shelfCodePattern matches storage location codes such as "A-01-01".
var shelfCodePattern = regexp.MustCompile(`^([A-E])-(\d{2})-(\d{2})$`)

// ErrShelfLocationIsNotConstructed is returned when attempting to use an
// improperly initialized ShelfLocation. Shelf locations must be created using
// ParseShelfLocation or NewRandomShelfLocation.
var ErrShelfLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"shelf location must be created via ParseShelfLocation or NewRandomShelfLocation")

// ShelfLocation is a validated warehouse storage location code in the form
// "A-01-01" (aisle, rack, slot). It is an immutable value object; the zero
// value is invalid and will fail validation.
//
// Example:
//
//	loc, err := kernel.ParseShelfLocation("B-01-05")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: B-01-05
type ShelfLocation struct { //nolint:recvcheck //using for validation
	aisle byte
	rack  int
	slot  int
	guard guard.ConstructorGuard
}

// ParseShelfLocation parses and validates a storage location code.
// The aisle letter must be A..E, the rack number 1..3 and the slot number 1..6.
// Returns an error if the code is malformed or any component is out of bounds.
func ParseShelfLocation(code string) (ShelfLocation, error) {
	m := shelfCodePattern.FindStringSubmatch(code)
	if m == nil {
		return ShelfLocation{}, errs.NewValueIsInvalidErrorWithCause("shelf location",
			fmt.Errorf("%q does not match aisle-rack-slot format", code))
	}

	loc := ShelfLocation{
		guard: guard.NewConstructorGuard(),
	}
	var rack, slot int
	if _, err := fmt.Sscanf(m[2], "%d", &rack); err != nil {
		return ShelfLocation{}, errs.NewValueIsInvalidErrorWithCause("shelf location", err)
	}
	if _, err := fmt.Sscanf(m[3], "%d", &slot); err != nil {
		return ShelfLocation{}, errs.NewValueIsInvalidErrorWithCause("shelf location", err)
	}

	if err := errors.Join(
		loc.setAisle(m[1][0]),
		loc.setRack(rack),
		loc.setSlot(slot),
	); err != nil {
		return ShelfLocation{}, err
	}

	return loc, nil
}

// NewRandomShelfLocation creates a ShelfLocation with random valid components.
// Useful for the intake receipt form suggestions and for tests.
func NewRandomShelfLocation() ShelfLocation {
	loc, _ := ParseShelfLocation(fmt.Sprintf("%c-%02d-%02d",
		byte(rand.IntN(int(shelfAisleMax-shelfAisleMin)+1))+shelfAisleMin, //nolint:gosec // it's ok
		rand.IntN(shelfRackMax)+1,                                        //nolint:gosec // it's ok
		rand.IntN(shelfSlotMax)+1))                                       //nolint:gosec // it's ok
	return loc
}

// Validate checks if the ShelfLocation was properly constructed.
// The zero value is invalid and will fail this validation.
func (l ShelfLocation) Validate() error {
	return l.guard.Validate(ErrShelfLocationIsNotConstructed)
}

// Aisle returns the aisle letter.
func (l ShelfLocation) Aisle() byte {
	return l.aisle
}

// Rack returns the rack number within the aisle.
func (l ShelfLocation) Rack() int {
	return l.rack
}

// Slot returns the slot number within the rack.
func (l ShelfLocation) Slot() int {
	return l.slot
}

// IsEqual compares two shelf locations component by component.
func (l ShelfLocation) IsEqual(other ShelfLocation) bool {
	return l.aisle == other.aisle && l.rack == other.rack && l.slot == other.slot
}

// String returns the canonical "A-01-01" representation.
// Implements the fmt.Stringer interface.
func (l ShelfLocation) String() string {
	return fmt.Sprintf("%c-%02d-%02d", l.aisle, l.rack, l.slot)
}

func (l *ShelfLocation) setAisle(aisle byte) error {
	if aisle < shelfAisleMin || aisle > shelfAisleMax {
		return errs.NewValueIsOutOfRangeError("aisle", string(aisle), string(rune(shelfAisleMin)), string(rune(shelfAisleMax)))
	}
	l.aisle = aisle
	return nil
}

func (l *ShelfLocation) setRack(rack int) error {
	if rack < 1 || rack > shelfRackMax {
		return errs.NewValueIsOutOfRangeError("rack", rack, 1, shelfRackMax)
	}
	l.rack = rack
	return nil
}

func (l *ShelfLocation) setSlot(slot int) error {
	if slot < 1 || slot > shelfSlotMax {
		return errs.NewValueIsOutOfRangeError("slot", slot, 1, shelfSlotMax)
	}
	l.slot = slot
	return nil
}
