package catalog

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/dryfruits-storefront/internal/pkg/logger"
)

func newSeeded() *Service {
	return NewService(SeedProducts(), SeedCategories(), logger.Discard())
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestSearch(t *testing.T) {
	s := newSeeded()

	t.Run("blank term returns everything in order", func(t *testing.T) {
		all := s.Search("  ")
		require.Len(t, all, 10)
		assert.Equal(t, 1, all[0].ID)
		assert.Equal(t, 10, all[9].ID)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"Premium Almonds"}, names(s.Search("ALMOND")))
	})

	t.Run("matches category", func(t *testing.T) {
		assert.Equal(t, []string{"Trail Mix", "Roasted Peanuts"}, names(s.Search("healthy")))
	})

	t.Run("name or category preserves catalog order", func(t *testing.T) {
		// "mix" hits Mixed Dry Fruits, Trail Mix and Festive Special Mix by name
		assert.Equal(t,
			[]string{"Mixed Dry Fruits", "Trail Mix", "Festive Special Mix"},
			names(s.Search("mix")))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, s.Search("pistachio"))
	})
}

func TestByCategory(t *testing.T) {
	s := newSeeded()
	assert.Len(t, s.ByCategory("Dry Fruits"), 5)
	assert.Empty(t, s.ByCategory("dry fruits"))
}

func TestApplyStockDelta(t *testing.T) {
	s := NewService([]Product{{ID: 1, Name: "Almonds", Category: "Dry Fruits", Stock: 5}}, nil, logger.Discard())

	s.ApplyStockDelta(1, 3)
	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, p.Stock)
	assert.True(t, p.InStock)

	s.ApplyStockDelta(1, 8)
	p, _ = s.Get(1)
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.InStock)

	// negative deltas never add stock
	s.ApplyStockDelta(1, -4)
	p, _ = s.Get(1)
	assert.Equal(t, 0, p.Stock)
}

func TestMutationsOnAbsentIDsAreNoOps(t *testing.T) {
	s := newSeeded()
	before := s.List()

	s.ApplyStockDelta(999, 1)
	s.SetStock(999, 3)
	s.Remove(999)

	assert.Equal(t, before, s.List())
	_, ok := s.Get(999)
	assert.False(t, ok)
}

func TestUpsertAndRemove(t *testing.T) {
	s := newSeeded()

	p, ok := s.Get(10)
	require.True(t, ok)
	p.Stock = 12
	p.InStock = false // stale flag gets corrected
	s.Upsert(p)

	got, _ := s.Get(10)
	assert.Equal(t, 12, got.Stock)
	assert.True(t, got.InStock)
	assert.Len(t, s.List(), 10)

	id := s.NextID()
	assert.Equal(t, 11, id)
	s.Upsert(Product{ID: id, Name: "Pistachios", Category: "Dry Fruits", Price: 899, DiscountPrice: 799})
	all := s.List()
	require.Len(t, all, 11)
	assert.Equal(t, "Pistachios", all[10].Name)
	assert.False(t, all[10].InStock)

	s.Remove(1)
	assert.Len(t, s.List(), 10)
	_, ok = s.Get(1)
	assert.False(t, ok)
}

func TestReadsAreIsolatedFromLaterWrites(t *testing.T) {
	s := newSeeded()
	snapshot := s.List()

	s.SetStock(1, 0)
	snapshot[1].Features[0] = "changed by reader"

	assert.Equal(t, 50, snapshot[0].Stock)
	fresh, _ := s.Get(2)
	assert.Equal(t, "Premium Quality", fresh.Features[0])
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct(Product{Name: "Raisins", Category: "Dry Fruits", Price: 100, DiscountPrice: 150})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = NewProduct(Product{Name: "", Category: "Dry Fruits"})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = NewProduct(Product{Name: "Raisins", Category: "Dry Fruits", Rating: 5.5})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	p, err := NewProduct(Product{Name: "Raisins", Category: "Dry Fruits", Price: 150, DiscountPrice: 120, Stock: 3})
	require.NoError(t, err)
	assert.True(t, p.InStock)
	assert.Equal(t, 20, p.GetDiscountPercentage())
}

func TestDiscountPercentage(t *testing.T) {
	cases := []struct {
		name         string
		price, offer int64
		wantPercent  int
	}{
		{"rounds down", 699, 599, 14},
		{"quarter off", 400, 300, 25},
		{"no discount", 299, 299, 0},
		{"free listing", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: tc.price, DiscountPrice: tc.offer}
			assert.Equal(t, tc.wantPercent, p.GetDiscountPercentage())
		})
	}
}

func TestProperty_InStockTracksStock(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("in-stock flag equals stock > 0 after any stock mutation", prop.ForAll(
		func(initial int, deltas []int, reset int) bool {
			s := NewService([]Product{{ID: 1, Name: "Almonds", Category: "Dry Fruits", Stock: initial}}, nil, logger.Discard())

			for _, d := range deltas {
				s.ApplyStockDelta(1, d)
				p, _ := s.Get(1)
				if p.Stock < 0 || p.InStock != (p.Stock > 0) {
					return false
				}
			}

			s.SetStock(1, reset)
			p, _ := s.Get(1)
			return p.Stock >= 0 && p.InStock == (p.Stock > 0)
		},
		gen.IntRange(0, 100),
		gen.SliceOf(gen.IntRange(-5, 40)),
		gen.IntRange(-10, 50),
	))

	properties.Property("stock decreases by exactly the delta, floored at zero", prop.ForAll(
		func(initial, delta int) bool {
			s := NewService([]Product{{ID: 1, Name: "Almonds", Category: "Dry Fruits", Stock: initial}}, nil, logger.Discard())
			s.ApplyStockDelta(1, delta)
			p, _ := s.Get(1)
			return p.Stock == max(0, initial-delta)
		},
		gen.IntRange(0, 100),
		gen.IntRange(0, 150),
	))

	properties.TestingRun(t)
}
