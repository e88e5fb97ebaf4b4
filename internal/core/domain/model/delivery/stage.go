package delivery

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// Stage is the state of a delivery run. Stages only advance forward, one
// step at a time, and every step is an explicit driver action.
type Stage int

const (
	// StageUnknown represents an invalid delivery stage.
	StageUnknown Stage = iota

	// Assigned means a carrier and vehicle were assigned but the truck has
	// not left yet.
	Assigned

	// EnRoute means the truck is on its way.
	EnRoute

	// Arriving means the truck is close to the delivery address.
	Arriving

	// Delivered means the package was handed over. Terminal.
	Delivered
)

// getStageStrings returns a map of Stage values to their string
// representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown: "unknown",
		Assigned:     "assigned",
		EnRoute:      "en_route",
		Arriving:     "arriving",
		Delivered:    "delivered",
	}
}

// Validate checks if the Stage value is valid.
func (s Stage) Validate() error {
	if s < Assigned || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("delivery stage",
			fmt.Errorf("%d is not a valid delivery stage", s))
	}
	return nil
}

// String returns the string representation of the delivery stage.
// Implements the fmt.Stringer interface.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the immediate successor stage. The second return value is
// false when the stage is terminal or invalid.
func (s Stage) Next() (Stage, bool) {
	if s < Assigned || s >= Delivered {
		return StageUnknown, false
	}
	return s + 1, true
}

// Advance validates a transition from the current stage to nextStage and
// returns the new stage. Only the immediate successor is reachable; anything
// else returns an IllegalTransitionError.
func (s Stage) Advance(nextStage Stage) (Stage, error) {
	if err := nextStage.Validate(); err != nil {
		return StageUnknown, err
	}

	successor, ok := s.Next()
	if !ok || successor != nextStage {
		return StageUnknown, errs.NewIllegalTransitionError("delivery stage",
			s.String(), nextStage.String())
	}
	return successor, nil
}
