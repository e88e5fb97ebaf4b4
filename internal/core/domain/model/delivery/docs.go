// Package delivery contains the domain model for the delivery station: the
// forward-only stage machine, the fixed carrier assignment drawn at start,
// and the per-order Process the driver advances one action at a time.
package delivery
