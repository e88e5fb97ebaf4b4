package sessions

import (
	"sync"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/errs"
)

// ErrNoActiveSession is returned when an operation requires a logged-in
// session and none exists.
var ErrNoActiveSession = errs.NewObjectNotFoundError("active session", "none")

// Manager owns the session roster and the single active-session slot. At
// most one session is logged in at any time; logging in marks the session
// busy and logging out restores it to available.
type Manager struct {
	mu sync.RWMutex

	// sessions holds the roster in registration order
	sessions []*session.UserSession

	// byID indexes the roster by session id
	byID map[kernel.UUID]int

	// active points into the roster, -1 when nobody is logged in
	active int
}

// NewManager creates a Manager with an empty roster and nobody logged in.
func NewManager() *Manager {
	return &Manager{
		byID:   make(map[kernel.UUID]int),
		active: -1,
	}
}

// Register adds a new session to the roster and returns it. The session
// starts available and logged out.
func (m *Manager) Register(displayName string, role session.Role) (*session.UserSession, error) {
	s, err := session.NewUserSession(kernel.NewUUID(), displayName, role)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.byID[s.ID()] = len(m.sessions)
	m.sessions = append(m.sessions, s)
	return s, nil
}

// Sessions returns the roster in registration order.
// The returned slice must not be mutated by callers.
func (m *Manager) Sessions() []*session.UserSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sessions
}

// Login activates a registered session and marks it busy.
//
// Returns a ConflictError if another session is already active, an
// ObjectNotFoundError if the id is not in the roster and an
// IllegalTransitionError if the session is on break. Logging in the session
// that is already active is a no-op.
func (m *Manager) Login(id kernel.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.byID[id]
	if !ok {
		return errs.NewObjectNotFoundError("session id", id.String())
	}

	if m.active == i {
		return nil
	}
	if m.active >= 0 {
		return errs.NewConflictError("active session", m.sessions[m.active].ID().String())
	}
	if m.sessions[i].Availability() == session.OnBreak {
		return errs.NewIllegalTransitionError("session availability",
			session.OnBreak.String(), session.Busy.String())
	}

	m.sessions[i].MarkBusy()
	m.active = i
	return nil
}

// Logout deactivates the active session and restores its availability to
// available. Logging out with nobody logged in is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active < 0 {
		return
	}

	m.sessions[m.active].MarkAvailable()
	m.active = -1
}

// Active returns the logged-in session. The second return value is false
// when nobody is logged in.
func (m *Manager) Active() (*session.UserSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active < 0 {
		return nil, false
	}
	return m.sessions[m.active], true
}

// RequireRole returns the active session if it holds the required role.
//
// Returns ErrNoActiveSession when nobody is logged in and a
// RoleNotAllowedError when the active session holds a different role.
func (m *Manager) RequireRole(required session.Role) (*session.UserSession, error) {
	if err := required.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active < 0 {
		return nil, ErrNoActiveSession
	}

	active := m.sessions[m.active]
	if active.Role() != required {
		return nil, errs.NewRoleNotAllowedError(required.String(), active.Role().String())
	}
	return active, nil
}
