package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/errs"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewTransitionOrderCommand(id, order.IntakeReview)
		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.IntakeReview, cmd.NextStatus())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.TransitionOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
	})
}

func TestTransitionOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("delegates to the store", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewTransitionOrderCommand(id, order.IntakeReview)
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("Transition", ctx, id, order.IntakeReview).Return(nil).Once()

		h := commands.NewTransitionOrderCommandHandler(store)
		require.NoError(t, h.Handle(ctx, cmd))
		store.AssertExpectations(t)
	})

	t.Run("surfaces an illegal transition", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewTransitionOrderCommand(id, order.Picked)
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("Transition", ctx, id, order.Picked).
			Return(errs.NewIllegalTransitionError("status", "pending", "picked")).Once()

		h := commands.NewTransitionOrderCommandHandler(store)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}
