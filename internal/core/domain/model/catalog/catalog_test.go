package catalog_test

import (
	"testing"

	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("embedded catalog parses and has products", func(t *testing.T) {
		c := catalog.Default()

		assert.Equal(t, 8, c.Len())
		for _, p := range c.Products() {
			require.NoError(t, p.Validate())
		}
	})

	t.Run("product order is document order", func(t *testing.T) {
		c := catalog.Default()

		assert.Equal(t, "Whole Milk 1L", c.Products()[0].Name)
		assert.Equal(t, "Bananas 1kg", c.Products()[7].Name)
	})
}

func TestParse(t *testing.T) {
	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := catalog.Parse([]byte("  \n"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := catalog.Parse([]byte("products: ]["))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects catalog without products", func(t *testing.T) {
		_, err := catalog.Parse([]byte("products: []"))

		require.Error(t, err)
	})

	t.Run("rejects duplicate product names", func(t *testing.T) {
		payload := []byte(`
products:
  - name: "Milk"
    unit_price: 1.0
    location: "A-01-01"
    category: "Dairy"
  - name: "milk"
    unit_price: 2.0
    location: "A-01-02"
    category: "Dairy"
`)

		_, err := catalog.Parse(payload)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects bad shelf location", func(t *testing.T) {
		payload := []byte(`
products:
  - name: "Milk"
    unit_price: 1.0
    location: "nowhere"
    category: "Dairy"
`)

		_, err := catalog.Parse(payload)

		require.Error(t, err)
	})
}

func TestCatalog_Find(t *testing.T) {
	c := catalog.Default()

	t.Run("exact match", func(t *testing.T) {
		p, ok := c.Find("Red Apples 1kg")

		require.True(t, ok)
		assert.Equal(t, "Fruit", p.Category)
		assert.Equal(t, "B-01-05", p.Location)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		p, ok := c.Find("red apples 1KG")

		require.True(t, ok)
		assert.Equal(t, "Red Apples 1kg", p.Name)
	})

	t.Run("misses unknown product", func(t *testing.T) {
		_, ok := c.Find("Caviar")

		assert.False(t, ok)
	})
}

func TestCatalog_FindClosest(t *testing.T) {
	c := catalog.Default()

	t.Run("tolerates small typos", func(t *testing.T) {
		p, ok := c.FindClosest("Whole Milk 1l")

		require.True(t, ok)
		assert.Equal(t, "Whole Milk 1L", p.Name)
	})

	t.Run("finds nearest name", func(t *testing.T) {
		p, ok := c.FindClosest("Bananass 1kg")

		require.True(t, ok)
		assert.Equal(t, "Bananas 1kg", p.Name)
	})

	t.Run("gives up on distant queries", func(t *testing.T) {
		_, ok := c.FindClosest("Industrial Compressor XL-9000")

		assert.False(t, ok)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		_, ok := c.FindClosest("")

		assert.False(t, ok)
	})

	t.Run("rejects a blank query", func(t *testing.T) {
		_, ok := c.FindClosest("   ")

		assert.False(t, ok)
	})

	t.Run("one letter never resolves to a product", func(t *testing.T) {
		_, ok := c.FindClosest("q")

		assert.False(t, ok)
	})

	t.Run("tolerance scales with query length", func(t *testing.T) {
		// 12-character query allows an edit distance of 4
		p, ok := c.FindClosest("Banana  1kgs")

		require.True(t, ok)
		assert.Equal(t, "Bananas 1kg", p.Name)
	})
}

func TestProduct_ShelfLocation(t *testing.T) {
	t.Run("parses the stored code", func(t *testing.T) {
		c := catalog.Default()
		p, ok := c.Find("Whole Chicken 2kg")
		require.True(t, ok)

		loc := p.ShelfLocation()

		require.NoError(t, loc.Validate())
		assert.Equal(t, "C-03-02", loc.String())
	})
}
