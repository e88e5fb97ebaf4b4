// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: guarded
// construction, role gating where a command belongs to a station role, and a
// handler that only touches state through the order store and the session
// manager.
package commands

import (
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/session"
)

type (
	// RoleChecker resolves the active session and gates commands on the
	// role they require.
	RoleChecker interface {
		RequireRole(required session.Role) (*session.UserSession, error)
	}

	// SessionGate controls the single active-session slot.
	SessionGate interface {
		Login(id kernel.UUID) error
		Logout()
	}
)
