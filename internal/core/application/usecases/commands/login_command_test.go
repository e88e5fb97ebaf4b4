package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"
)

type MockSessionGate struct{ mock.Mock }

func (m *MockSessionGate) Login(id kernel.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockSessionGate) Logout() {
	m.Called()
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	t.Run("activates the session", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewLoginCommand(id)
		require.NoError(t, err)

		gate := new(MockSessionGate)
		gate.On("Login", id).Return(nil).Once()

		h := commands.NewLoginCommandHandler(gate)
		require.NoError(t, h.Handle(t.Context(), cmd))
		gate.AssertExpectations(t)
	})

	t.Run("surfaces a conflict", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewLoginCommand(id)
		require.NoError(t, err)

		gate := new(MockSessionGate)
		gate.On("Login", id).Return(errs.NewConflictError("active session", "other")).Once()

		h := commands.NewLoginCommandHandler(gate)
		err = h.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestLogoutCommandHandler_Handle(t *testing.T) {
	gate := new(MockSessionGate)
	gate.On("Logout").Return().Once()

	cmd := commands.NewLogoutCommand()
	h := commands.NewLogoutCommandHandler(gate)
	require.NoError(t, h.Handle(t.Context(), cmd))
	gate.AssertExpectations(t)
}
