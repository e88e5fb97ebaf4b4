package picking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/pkg/errs"
)

func testItem(t *testing.T, name string, quantity int) *order.LineItem {
	t.Helper()

	location, err := kernel.ParseShelfLocation("A-01-01")
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), name, quantity, 10.0, location, "Dairy")
	require.NoError(t, err)
	return item
}

func reviewedOrder(t *testing.T, items ...*order.LineItem) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "Maria Lopez", items, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Advance(order.IntakeReview))
	return o
}

func TestNewProcess(t *testing.T) {
	t.Run("builds an unpicked checklist from the order lines", func(t *testing.T) {
		milk := testItem(t, "Whole Milk 1L", 2)
		bread := testItem(t, "Wholegrain Bread", 1)
		o := reviewedOrder(t, milk, bread)

		p, err := NewProcess(kernel.NewUUID(), o, kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		assert.Equal(t, o.ID(), p.OrderID())
		assert.Equal(t, "Maria Lopez", p.Customer())
		assert.Equal(t, SelectingTool, p.Status())
		assert.Equal(t, ToolUnknown, p.Tool())
		require.Len(t, p.Items(), 2)
		assert.Equal(t, milk.ID(), p.Items()[0].LineItemID())
		assert.Equal(t, "Whole Milk 1L", p.Items()[0].Name())
		assert.False(t, p.Items()[0].Picked())
		assert.Equal(t, bread.ID(), p.Items()[1].LineItemID())
		assert.Equal(t, 0, p.PickedCount())
	})

	t.Run("rejects an order that is not in intake review", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Maria Lopez",
			[]*order.LineItem{testItem(t, "Whole Milk 1L", 2)}, time.Now())
		require.NoError(t, err)

		_, err = NewProcess(kernel.NewUUID(), o, kernel.NewUUID(), time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("requires a valid picker session id", func(t *testing.T) {
		o := reviewedOrder(t, testItem(t, "Whole Milk 1L", 2))

		_, err := NewProcess(kernel.NewUUID(), o, kernel.UUID{}, time.Now())
		require.Error(t, err)
	})
}

func TestProcess_SelectTool(t *testing.T) {
	t.Run("unlocks the checklist", func(t *testing.T) {
		p, err := NewProcess(kernel.NewUUID(),
			reviewedOrder(t, testItem(t, "Whole Milk 1L", 2)),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		require.NoError(t, p.SelectTool(ToolHandTruck))
		assert.Equal(t, ToolHandTruck, p.Tool())
		assert.Equal(t, InProgress, p.Status())
	})

	t.Run("rejects an invalid tool kind", func(t *testing.T) {
		p, err := NewProcess(kernel.NewUUID(),
			reviewedOrder(t, testItem(t, "Whole Milk 1L", 2)),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		err = p.SelectTool(ToolUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, SelectingTool, p.Status())
	})

	t.Run("cannot select twice", func(t *testing.T) {
		p, err := NewProcess(kernel.NewUUID(),
			reviewedOrder(t, testItem(t, "Whole Milk 1L", 2)),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		require.NoError(t, p.SelectTool(ToolForklift))
		err = p.SelectTool(ToolHandTruck)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, ToolForklift, p.Tool())
	})
}

func TestProcess_MarkItemPicked(t *testing.T) {
	t.Run("checklist is locked before a tool is selected", func(t *testing.T) {
		milk := testItem(t, "Whole Milk 1L", 2)
		p, err := NewProcess(kernel.NewUUID(), reviewedOrder(t, milk),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		err = p.MarkItemPicked(milk.ID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("marks a line and counts it", func(t *testing.T) {
		milk := testItem(t, "Whole Milk 1L", 2)
		bread := testItem(t, "Wholegrain Bread", 1)
		p, err := NewProcess(kernel.NewUUID(), reviewedOrder(t, milk, bread),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		require.NoError(t, p.SelectTool(ToolHandTruck))

		require.NoError(t, p.MarkItemPicked(milk.ID()))
		assert.True(t, p.Items()[0].Picked())
		assert.Equal(t, 1, p.PickedCount())
		assert.False(t, p.ReadyToComplete())
	})

	t.Run("re-marking a picked line is a no-op", func(t *testing.T) {
		milk := testItem(t, "Whole Milk 1L", 2)
		p, err := NewProcess(kernel.NewUUID(), reviewedOrder(t, milk),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		require.NoError(t, p.SelectTool(ToolHandTruck))

		require.NoError(t, p.MarkItemPicked(milk.ID()))
		require.NoError(t, p.MarkItemPicked(milk.ID()))
		assert.Equal(t, 1, p.PickedCount())
	})

	t.Run("unknown line item id is not found", func(t *testing.T) {
		p, err := NewProcess(kernel.NewUUID(),
			reviewedOrder(t, testItem(t, "Whole Milk 1L", 2)),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		require.NoError(t, p.SelectTool(ToolHandTruck))

		err = p.MarkItemPicked(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestProcess_Complete(t *testing.T) {
	t.Run("fails while lines remain unpicked", func(t *testing.T) {
		milk := testItem(t, "Whole Milk 1L", 2)
		bread := testItem(t, "Wholegrain Bread", 1)
		p, err := NewProcess(kernel.NewUUID(), reviewedOrder(t, milk, bread),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		require.NoError(t, p.SelectTool(ToolPalletJack))
		require.NoError(t, p.MarkItemPicked(milk.ID()))

		err = p.Complete()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, InProgress, p.Status())
	})

	t.Run("closes once every line is picked", func(t *testing.T) {
		milk := testItem(t, "Whole Milk 1L", 2)
		bread := testItem(t, "Wholegrain Bread", 1)
		p, err := NewProcess(kernel.NewUUID(), reviewedOrder(t, milk, bread),
			kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		require.NoError(t, p.SelectTool(ToolPalletJack))
		require.NoError(t, p.MarkItemPicked(milk.ID()))
		require.NoError(t, p.MarkItemPicked(bread.ID()))

		require.True(t, p.ReadyToComplete())
		require.NoError(t, p.Complete())
		assert.Equal(t, Completed, p.Status())
	})
}

func TestToolKind(t *testing.T) {
	t.Run("string values", func(t *testing.T) {
		assert.Equal(t, "hand_truck", ToolHandTruck.String())
		assert.Equal(t, "pallet_jack", ToolPalletJack.String())
		assert.Equal(t, "forklift", ToolForklift.String())
		assert.Equal(t, "unknown", ToolUnknown.String())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Hand Truck", ToolHandTruck.Label())
		assert.Equal(t, "Pallet Jack", ToolPalletJack.Label())
		assert.Equal(t, "Forklift", ToolForklift.Label())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, ToolHandTruck.Validate())
		require.NoError(t, ToolForklift.Validate())
		assert.ErrorIs(t, ToolUnknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, ToolKind(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string values", func(t *testing.T) {
		assert.Equal(t, "selecting_tool", SelectingTool.String())
		assert.Equal(t, "in_progress", InProgress.String())
		assert.Equal(t, "completed", Completed.String())
		assert.Equal(t, "unknown", StatusUnknown.String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, SelectingTool.Validate())
		require.NoError(t, Completed.Validate())
		assert.ErrorIs(t, StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})
}
