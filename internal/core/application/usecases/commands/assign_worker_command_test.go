package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/errs"
)

func TestNewAssignWorkerCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAssignWorkerCommand(kernel.NewUUID(), session.RolePicker, kernel.NewUUID())
		require.NoError(t, err)
		assert.Equal(t, session.RolePicker, cmd.Role())
	})

	t.Run("customer is not a station role", func(t *testing.T) {
		_, err := commands.NewAssignWorkerCommand(kernel.NewUUID(), session.RoleCustomer, kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignWorkerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	cmd, err := commands.NewAssignWorkerCommand(orderID, session.RoleDriver, workerID)
	require.NoError(t, err)

	store := new(MockOrderStore)
	store.On("AssignWorker", ctx, orderID, session.RoleDriver, workerID).Return(nil).Once()

	h := commands.NewAssignWorkerCommandHandler(store)
	require.NoError(t, h.Handle(ctx, cmd))
	store.AssertExpectations(t)
}
