package stations_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"atlas/internal/adapters/out/memory"
	"atlas/internal/core/application/sessions"
	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/session"
)

// fixture wires a real in-memory store and session manager with one
// registered session per role.
type fixture struct {
	store   *memory.OrderStore
	manager *sessions.Manager
	catalog *catalog.Catalog

	customer *session.UserSession
	operator *session.UserSession
	picker   *session.UserSession
	packer   *session.UserSession
	driver   *session.UserSession
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:   memory.NewOrderStore(),
		manager: sessions.NewManager(),
		catalog: catalog.Default(),
	}

	var err error
	f.customer, err = f.manager.Register("Maria Lopez", session.RoleCustomer)
	require.NoError(t, err)
	f.operator, err = f.manager.Register("Carlos Ruiz", session.RoleIntakeOperator)
	require.NoError(t, err)
	f.picker, err = f.manager.Register("Ana Torres", session.RolePicker)
	require.NoError(t, err)
	f.packer, err = f.manager.Register("Luis Vega", session.RolePacker)
	require.NoError(t, err)
	f.driver, err = f.manager.Register("Sofia Marin", session.RoleDriver)
	require.NoError(t, err)
	return f
}

// loginAs switches the active session, logging out whoever holds the slot.
func (f *fixture) loginAs(t *testing.T, s *session.UserSession) {
	t.Helper()

	f.manager.Logout()
	require.NoError(t, f.manager.Login(s.ID()))
}

// addOrder stores a new order with one line per quantity and walks it
// forward to the given status.
func (f *fixture) addOrder(t *testing.T, status order.Status, quantities ...int) *order.Order {
	t.Helper()

	location, err := kernel.ParseShelfLocation("A-02-03")
	require.NoError(t, err)

	var items []*order.LineItem
	for _, quantity := range quantities {
		item, err := order.NewLineItem(kernel.NewUUID(), "Wholegrain Bread",
			quantity, 18.50, location, "Bakery")
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "Maria Lopez", items, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.store.Add(t.Context(), o))

	for next := order.IntakeReview; next <= status; next++ {
		require.NoError(t, o.Advance(next))
	}
	return o
}
