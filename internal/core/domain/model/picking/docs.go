// Package picking contains the domain model for the picking station: the
// handling tool kinds, the run state machine, and the per-order Process that
// gates its checklist behind a committed tool selection.
package picking
