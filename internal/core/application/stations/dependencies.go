// Package stations contains the four station processors: Intake, Picking,
// Packing and Delivery. Each processor owns the ephemeral sub-process
// records for orders currently being worked at its station, keyed by order
// id, and only writes back to the order through the order store's Transition
// and AssignWorker operations. On completion the processor discards its
// local record; the order aggregate never carries station state.
package stations

import (
	"atlas/internal/core/domain/model/session"
)

// RoleChecker resolves the active session and gates station operations on
// the role they require.
type RoleChecker interface {
	RequireRole(required session.Role) (*session.UserSession, error)
}
