// Package packing contains the domain model for the packing station: the
// container kinds, the two-step pack-then-verify item states, and the
// per-order Process that gates item work behind a committed packaging choice.
package packing
