package queries

import (
	"errors"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/guard"
)

var (
	ErrGetActiveSessionQueryIsNotConstructed = errors.New(
		"GetActiveSessionQuery must be created via NewGetActiveSessionQuery constructor",
	)
)

// GetActiveSessionQuery retrieves the currently logged-in session, if any.
type GetActiveSessionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveSessionQuery creates a parameterless query for the active
// session.
func NewGetActiveSessionQuery() GetActiveSessionQuery {
	return GetActiveSessionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveSessionQueryIsNotConstructed if validation fails.
func (q GetActiveSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionQueryIsNotConstructed)
}

// ActiveSessionResponse describes the logged-in session. LoggedIn is false
// when nobody is active and the remaining fields are zero.
type ActiveSessionResponse struct {
	LoggedIn     bool
	ID           kernel.UUID
	DisplayName  string
	Role         session.Role
	Availability session.Availability
}
