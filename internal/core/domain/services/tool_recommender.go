package services

import (
	"fmt"

	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/picking"
)

// unitLoad is the load contributed by one ordered unit. Every product weighs
// the same for recommendation purposes; the thresholds below are calibrated
// against that.
const unitLoad = 1

const (
	// lightLoadMax is the largest load a hand truck handles comfortably.
	lightLoadMax = 50

	// mediumLoadMax is the largest load a pallet jack handles comfortably.
	mediumLoadMax = 200
)

// ToolRecommender is a domain service that maps an order's aggregate load to
// the handling tool a picker should use.
//
// Business rules:
//   - The load is the sum of line quantities times a constant unit load
//   - Loads up to 50 call for a hand truck, up to 200 for a pallet jack,
//     anything heavier for a forklift
//   - The recommendation is advisory: a picker may choose any tool, and a
//     mismatched choice produces feedback but never blocks the run
//
// Example usage:
//
//	recommender := NewToolRecommender()
//	tool := recommender.Recommend(order)
//	ok, feedback := recommender.ValidateChoice(order, picking.ToolForklift)
type ToolRecommender struct{}

// NewToolRecommender creates a new ToolRecommender instance.
func NewToolRecommender() ToolRecommender {
	return ToolRecommender{}
}

// Load returns the order's aggregate load: the sum of line quantities times
// the constant unit load.
func (r ToolRecommender) Load(o *order.Order) int {
	load := 0
	for _, item := range o.Items() {
		load += item.Quantity() * unitLoad
	}
	return load
}

// Recommend returns the tool suited to the order's aggregate load.
func (r ToolRecommender) Recommend(o *order.Order) picking.ToolKind {
	return r.recommendForLoad(r.Load(o))
}

// ValidateChoice checks a picker's tool choice against the recommendation.
//
// The first return value is true when the choice matches. The feedback
// string explains the verdict either way and is meant for the trainee; a
// mismatch is advice, not an error, and never blocks the picking run.
func (r ToolRecommender) ValidateChoice(o *order.Order, choice picking.ToolKind) (bool, string) {
	load := r.Load(o)
	recommended := r.recommendForLoad(load)

	if choice == recommended {
		return true, fmt.Sprintf("%s is the right call for a load of %d units",
			recommended.Label(), load)
	}
	return false, fmt.Sprintf("a load of %d units calls for a %s, not a %s; "+
		"you can continue, but expect extra trips",
		load, recommended.Label(), choice.Label())
}

func (r ToolRecommender) recommendForLoad(load int) picking.ToolKind {
	switch {
	case load <= lightLoadMax:
		return picking.ToolHandTruck
	case load <= mediumLoadMax:
		return picking.ToolPalletJack
	default:
		return picking.ToolForklift
	}
}
