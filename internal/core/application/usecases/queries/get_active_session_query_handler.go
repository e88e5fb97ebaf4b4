package queries

import (
	"context"

	"atlas/internal/core/domain/model/session"
)

// ActiveSessionSource exposes the single active-session slot to the query
// side.
type ActiveSessionSource interface {
	Active() (*session.UserSession, bool)
}

// GetActiveSessionQueryHandler reports who is logged in.
type GetActiveSessionQueryHandler struct {
	source ActiveSessionSource
}

// NewGetActiveSessionQueryHandler creates a handler for active-session
// lookups.
func NewGetActiveSessionQueryHandler(source ActiveSessionSource) GetActiveSessionQueryHandler {
	return GetActiveSessionQueryHandler{source: source}
}

// Handle executes the query. When nobody is logged in the response has
// LoggedIn set to false; that is not an error.
func (h GetActiveSessionQueryHandler) Handle(
	_ context.Context,
	query GetActiveSessionQuery,
) (ActiveSessionResponse, error) {
	if err := query.Validate(); err != nil {
		return ActiveSessionResponse{}, err
	}

	active, ok := h.source.Active()
	if !ok {
		return ActiveSessionResponse{}, nil
	}

	return ActiveSessionResponse{
		LoggedIn:     true,
		ID:           active.ID(),
		DisplayName:  active.DisplayName(),
		Role:         active.Role(),
		Availability: active.Availability(),
	}, nil
}
