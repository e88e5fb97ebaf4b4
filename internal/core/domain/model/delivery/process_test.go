package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/errs"
)

func testAssignment() Assignment {
	return Assignment{
		Carrier:  "Atlas Express",
		Vehicle:  "Box Truck 12",
		Address:  "742 Oak Street",
		Estimate: 30 * time.Minute,
	}
}

func packedOrder(t *testing.T) *order.Order {
	t.Helper()

	location, err := kernel.ParseShelfLocation("C-03-02")
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Whole Chicken 2kg", 1, 89.90, location, "Meat")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "Ana Torres",
		[]*order.LineItem{item}, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Advance(order.IntakeReview))
	require.NoError(t, o.Advance(order.Picked))
	require.NoError(t, o.Advance(order.Packed))
	return o
}

func startedProcess(t *testing.T) *Process {
	t.Helper()

	p, err := NewProcess(kernel.NewUUID(), packedOrder(t), kernel.NewUUID(),
		testAssignment(), time.Now())
	require.NoError(t, err)
	return p
}

func TestNewProcess(t *testing.T) {
	t.Run("starts assigned with the drawn assignment", func(t *testing.T) {
		o := packedOrder(t)
		started := time.Now()

		p, err := NewProcess(kernel.NewUUID(), o, kernel.NewUUID(),
			testAssignment(), started)
		require.NoError(t, err)

		assert.Equal(t, o.ID(), p.OrderID())
		assert.Equal(t, "Ana Torres", p.Customer())
		assert.Equal(t, Assigned, p.Stage())
		assert.Equal(t, "Atlas Express", p.Assignment().Carrier)
		assert.Equal(t, 30*time.Minute, p.Assignment().Estimate)
		assert.Equal(t, started, p.StartedAt())
		assert.Empty(t, p.Notes())
		assert.False(t, p.Delivered())
	})

	t.Run("rejects an order that was not packed", func(t *testing.T) {
		location, err := kernel.ParseShelfLocation("C-03-02")
		require.NoError(t, err)
		item, err := order.NewLineItem(kernel.NewUUID(), "Whole Chicken 2kg", 1, 89.90, location, "Meat")
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), "Ana Torres",
			[]*order.LineItem{item}, time.Now())
		require.NoError(t, err)

		_, err = NewProcess(kernel.NewUUID(), o, kernel.NewUUID(),
			testAssignment(), time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("rejects an incomplete assignment", func(t *testing.T) {
		assignment := testAssignment()
		assignment.Carrier = ""

		_, err := NewProcess(kernel.NewUUID(), packedOrder(t), kernel.NewUUID(),
			assignment, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProcess_Advance(t *testing.T) {
	t.Run("walks the full stage sequence", func(t *testing.T) {
		p := startedProcess(t)

		require.NoError(t, p.Advance(EnRoute))
		assert.Equal(t, 40, p.Progress())
		require.NoError(t, p.Advance(Arriving))
		assert.Equal(t, 80, p.Progress())
		require.NoError(t, p.Advance(Delivered))
		assert.Equal(t, 100, p.Progress())
		assert.True(t, p.Delivered())
	})

	t.Run("cannot skip a stage", func(t *testing.T) {
		p := startedProcess(t)

		err := p.Advance(Arriving)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, Assigned, p.Stage())
	})

	t.Run("cannot go backwards", func(t *testing.T) {
		p := startedProcess(t)
		require.NoError(t, p.Advance(EnRoute))

		err := p.Advance(Assigned)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, EnRoute, p.Stage())
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		p := startedProcess(t)
		require.NoError(t, p.Advance(EnRoute))
		require.NoError(t, p.Advance(Arriving))
		require.NoError(t, p.Advance(Delivered))

		_, ok := p.Stage().Next()
		assert.False(t, ok)
	})
}

func TestProcess_AddNote(t *testing.T) {
	p := startedProcess(t)

	require.NoError(t, p.AddNote("gate code 4412"))
	require.NoError(t, p.AddNote("leave at front desk"))
	assert.Equal(t, []string{"gate code 4412", "leave at front desk"}, p.Notes())

	err := p.AddNote("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestProcess_Elapsed(t *testing.T) {
	started := time.Now()
	p, err := NewProcess(kernel.NewUUID(), packedOrder(t), kernel.NewUUID(),
		testAssignment(), started)
	require.NoError(t, err)

	now := started.Add(3*time.Minute + 7*time.Second)
	assert.Equal(t, 3*time.Minute+7*time.Second, p.Elapsed(now))
	assert.Equal(t, "3:07", p.ElapsedDisplay(now))
}

func TestNewRandomAssignment(t *testing.T) {
	for range 20 {
		a := NewRandomAssignment()
		require.NoError(t, a.Validate())
		assert.GreaterOrEqual(t, a.Estimate, 15*time.Minute)
		assert.LessOrEqual(t, a.Estimate, 45*time.Minute)
	}
}

func TestStage(t *testing.T) {
	t.Run("string values", func(t *testing.T) {
		assert.Equal(t, "assigned", Assigned.String())
		assert.Equal(t, "en_route", EnRoute.String())
		assert.Equal(t, "arriving", Arriving.String())
		assert.Equal(t, "delivered", Delivered.String())
		assert.Equal(t, "unknown", StageUnknown.String())
	})

	t.Run("advance validates the target", func(t *testing.T) {
		_, err := Assigned.Advance(Stage(42))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
