package stations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/core/application/stations"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/packing"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/pkg/errs"
)

func newPackingProcessor(f *fixture) *stations.PackingProcessor {
	return stations.NewPackingProcessor(f.store, f.manager)
}

func TestPackingProcessor_Start(t *testing.T) {
	t.Run("opens a run on a picked order", func(t *testing.T) {
		f := newFixture(t)
		o := f.addOrder(t, order.Picked, 2)
		f.loginAs(t, f.packer)
		p := newPackingProcessor(f)

		run, err := p.Start(t.Context(), o.ID())
		require.NoError(t, err)
		assert.Equal(t, packing.SelectingPackaging, run.Status())
	})

	t.Run("second start before completion conflicts", func(t *testing.T) {
		f := newFixture(t)
		o := f.addOrder(t, order.Picked, 2)
		f.loginAs(t, f.packer)
		p := newPackingProcessor(f)

		_, err := p.Start(t.Context(), o.ID())
		require.NoError(t, err)

		_, err = p.Start(t.Context(), o.ID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("requires the packer role", func(t *testing.T) {
		f := newFixture(t)
		o := f.addOrder(t, order.Picked, 2)
		f.loginAs(t, f.driver)
		p := newPackingProcessor(f)

		_, err := p.Start(t.Context(), o.ID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrRoleNotAllowed)
	})
}

func TestPackingProcessor_Complete(t *testing.T) {
	t.Run("verifies every item, completes and advances the order", func(t *testing.T) {
		f := newFixture(t)
		o := f.addOrder(t, order.Picked, 2, 3)
		f.loginAs(t, f.packer)
		p := newPackingProcessor(f)

		run, err := p.Start(t.Context(), o.ID())
		require.NoError(t, err)
		require.NoError(t, p.SelectPackaging(t.Context(), o.ID(), packing.PackagingBox))

		for _, item := range run.Items() {
			require.NoError(t, p.MarkItemPacked(t.Context(), o.ID(), item.LineItemID()))
			require.NoError(t, p.VerifyItem(t.Context(), o.ID(), item.LineItemID()))
		}
		require.NoError(t, p.Complete(t.Context(), o.ID()))

		got, err := f.store.Get(t.Context(), o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Packed, got.Status())

		worker, ok := got.Worker(session.RolePacker)
		require.True(t, ok)
		assert.True(t, worker.IsEqual(f.packer.ID()))

		_, ok = p.Run(o.ID())
		assert.False(t, ok)
	})

	t.Run("cannot complete with unverified items", func(t *testing.T) {
		f := newFixture(t)
		o := f.addOrder(t, order.Picked, 2)
		f.loginAs(t, f.packer)
		p := newPackingProcessor(f)

		run, err := p.Start(t.Context(), o.ID())
		require.NoError(t, err)
		require.NoError(t, p.SelectPackaging(t.Context(), o.ID(), packing.PackagingBag))
		require.NoError(t, p.MarkItemPacked(t.Context(), o.ID(), run.Items()[0].LineItemID()))

		err = p.Complete(t.Context(), o.ID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}
