package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/errs"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderStore) Transition(ctx context.Context, id kernel.UUID, nextStatus order.Status) error {
	args := m.Called(ctx, id, nextStatus)
	return args.Error(0)
}
func (m *MockOrderStore) AssignWorker(ctx context.Context, id kernel.UUID, role session.Role, workerID kernel.UUID) error {
	args := m.Called(ctx, id, role, workerID)
	return args.Error(0)
}
func (m *MockOrderStore) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderStore) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRoleChecker struct{ mock.Mock }

func (m *MockRoleChecker) RequireRole(required session.Role) (*session.UserSession, error) {
	args := m.Called(required)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.UserSession), args.Error(1)
}

func customerSession(t *testing.T) *session.UserSession {
	t.Helper()
	s, err := session.NewUserSession(kernel.NewUUID(), "Maria Lopez", session.RoleCustomer)
	require.NoError(t, err)
	return s
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Lopez",
		[]commands.OrderLine{
			{Product: "Whole Milk 1L", Quantity: 2},
			{Product: "bananas 1kg", Quantity: 3},
		})
	require.NoError(t, err)

	store := new(MockOrderStore)
	roles := new(MockRoleChecker)
	roles.On("RequireRole", session.RoleCustomer).Return(customerSession(t), nil).Once()
	store.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			o := args.Get(1).(*order.Order)
			assert.Equal(t, order.Pending, o.Status())
			require.Len(t, o.Items(), 2)
			assert.Equal(t, "Whole Milk 1L", o.Items()[0].Name())
			assert.Equal(t, "Bananas 1kg", o.Items()[1].Name())
			assert.InDelta(t, 2*25.90+3*22.50, o.Total(), 0.001)
		}).
		Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(store, catalog.Default(), roles)
	require.NoError(t, h.Handle(ctx, cmd))
	store.AssertExpectations(t)
	roles.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderStore), catalog.Default(), new(MockRoleChecker))

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_RoleError(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Lopez",
		[]commands.OrderLine{{Product: "Whole Milk 1L", Quantity: 2}})
	require.NoError(t, err)

	roles := new(MockRoleChecker)
	roles.On("RequireRole", session.RoleCustomer).
		Return(nil, errs.NewRoleNotAllowedError("customer", "picker")).Once()

	h := commands.NewCreateOrderCommandHandler(new(MockOrderStore), catalog.Default(), roles)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRoleNotAllowed)
	roles.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Lopez",
		[]commands.OrderLine{{Product: "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", Quantity: 1}})
	require.NoError(t, err)

	roles := new(MockRoleChecker)
	roles.On("RequireRole", session.RoleCustomer).Return(customerSession(t), nil).Once()

	h := commands.NewCreateOrderCommandHandler(new(MockOrderStore), catalog.Default(), roles)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Lopez",
		[]commands.OrderLine{{Product: "Whole Milk 1L", Quantity: 2}})
	require.NoError(t, err)

	store := new(MockOrderStore)
	roles := new(MockRoleChecker)
	roles.On("RequireRole", session.RoleCustomer).Return(customerSession(t), nil).Once()
	store.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("add error")).Once()

	h := commands.NewCreateOrderCommandHandler(store, catalog.Default(), roles)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	store.AssertExpectations(t)
}
