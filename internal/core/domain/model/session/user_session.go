package session

import (
	"errors"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"
	"atlas/internal/pkg/guard"
)

var (
	// ErrDisplayNameIsRequired is returned when attempting to create a session
	// without a display name.
	ErrDisplayNameIsRequired = errs.NewValueIsRequiredError("display name")
	// ErrUserSessionIsNotConstructed is returned when using an improperly
	// initialized UserSession.
	ErrUserSessionIsNotConstructed = errors.New("UserSession must be created via NewUserSession constructor")
)

// UserSession represents a human worker who can log into the simulator.
// It is an entity that carries the worker's identity, role and availability.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Display name must be non-empty
//   - Role must be one of the five worker roles
//   - Availability moves to busy when the session is activated and back to
//     available when it ends; the session manager owns that rule
//
// Sessions start available. At most one session is active system-wide at any
// time, enforced by the session manager, not by this entity.
type UserSession struct {
	// id is the unique identifier for the session
	id kernel.UUID

	// displayName is the human-readable worker name
	displayName string

	// role gates which commands the session may issue
	role Role

	// availability is the worker's current availability state
	availability Availability

	// guard ensures the session was created via NewUserSession
	guard guard.ConstructorGuard
}

// NewUserSession creates a new UserSession with validation. This is the only
// way to create a valid UserSession.
//
// The session is created with Available availability; activation is a
// separate step owned by the session manager.
func NewUserSession(id kernel.UUID, displayName string, role Role) (*UserSession, error) {
	s := &UserSession{
		availability: Available,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDisplayName(displayName),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the UserSession instance was properly constructed through
// NewUserSession.
func (s *UserSession) Validate() error {
	if s == nil {
		return ErrUserSessionIsNotConstructed
	}
	return s.guard.Validate(ErrUserSessionIsNotConstructed)
}

// IsEqual compares two sessions by their unique identifiers.
func (s *UserSession) IsEqual(other *UserSession) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the session's unique identifier.
func (s *UserSession) ID() kernel.UUID {
	return s.id
}

// DisplayName returns the worker's display name.
func (s *UserSession) DisplayName() string {
	return s.displayName
}

// Role returns the session's worker role.
func (s *UserSession) Role() Role {
	return s.role
}

// Availability returns the worker's current availability state.
func (s *UserSession) Availability() Availability {
	return s.availability
}

// MarkBusy forces the availability to Busy.
// Called by the session manager when the session is activated.
func (s *UserSession) MarkBusy() {
	s.availability = Busy
}

// MarkAvailable restores the availability to Available.
// Called by the session manager when the session ends.
func (s *UserSession) MarkAvailable() {
	s.availability = Available
}

// MarkOnBreak sets the availability to OnBreak.
// A worker on break keeps their identity but cannot hold the active session.
func (s *UserSession) MarkOnBreak() {
	s.availability = OnBreak
}

func (s *UserSession) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *UserSession) setDisplayName(displayName string) error {
	if displayName == "" {
		return ErrDisplayNameIsRequired
	}
	s.displayName = displayName
	return nil
}

func (s *UserSession) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
