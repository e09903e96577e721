package cart

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
	"github.com/your-org/dryfruits-storefront/internal/pkg/logger"
)

type fakeAuth struct{ loggedIn bool }

func (f *fakeAuth) RequireIdentity() (session.Identity, error) {
	if !f.loggedIn {
		return session.Identity{}, session.ErrAuthenticationRequired
	}
	return session.Identity{Email: "shopper@example.com", Name: "shopper"}, nil
}

func newCart(loggedIn bool) *Service {
	return NewService(&fakeAuth{loggedIn: loggedIn}, config.Default().Store, logger.Discard())
}

var (
	productA = catalog.Product{ID: 1, Name: "Premium Almonds", Price: 399, DiscountPrice: 299, Stock: 50, InStock: true}
	productB = catalog.Product{ID: 2, Name: "Cashew Nuts", Price: 499, DiscountPrice: 399, Stock: 30, InStock: true}
	productC = catalog.Product{ID: 7, Name: "Roasted Peanuts", Price: 149, DiscountPrice: 99, Stock: 45, InStock: true}
)

func TestAdd_RequiresIdentity(t *testing.T) {
	c := newCart(false)

	err := c.Add(productA)
	assert.ErrorIs(t, err, session.ErrAuthenticationRequired)
	assert.True(t, c.IsEmpty())
}

func TestAdd_IncrementsExistingLine(t *testing.T) {
	c := newCart(true)

	require.NoError(t, c.Add(productA))
	require.NoError(t, c.Add(productB))
	require.NoError(t, c.Add(productA))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, c.Count())
}

func TestAdd_OutOfStockIsNotBlocked(t *testing.T) {
	c := newCart(true)

	soldOut := catalog.Product{ID: 10, Name: "Festive Special Mix", Price: 799, DiscountPrice: 649}
	require.NoError(t, c.Add(soldOut))
	assert.Equal(t, 1, c.Count())
}

func TestSetQuantityAndRemove(t *testing.T) {
	c := newCart(true)
	require.NoError(t, c.Add(productA))
	require.NoError(t, c.Add(productB))

	c.SetQuantity(1, 5)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	c.SetQuantity(1, 0)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ID)

	c.SetQuantity(2, -3)
	assert.True(t, c.IsEmpty())

	// absent lines are ignored
	c.SetQuantity(99, 4)
	c.Remove(99)
	assert.True(t, c.IsEmpty())
}

func TestTotals_ScenarioAboveThreshold(t *testing.T) {
	c := newCart(true)
	require.NoError(t, c.Add(productA))
	require.NoError(t, c.Add(productA))
	require.NoError(t, c.Add(productB))

	assert.Equal(t, int64(997), c.Subtotal())
	assert.Equal(t, int64(0), c.ShippingCost())
	assert.Equal(t, int64(997), c.Total())

	totals := c.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
}

func TestTotals_ThresholdIsStrict(t *testing.T) {
	cfg := config.Default().Store

	assert.Equal(t, int64(50), ShippingCost(0, cfg))
	assert.Equal(t, int64(50), ShippingCost(500, cfg))
	assert.Equal(t, int64(0), ShippingCost(501, cfg))

	c := newCart(true)
	require.NoError(t, c.Add(productC))
	assert.Equal(t, int64(99), c.Subtotal())
	assert.Equal(t, int64(149), c.Total())
}

func TestClear(t *testing.T) {
	c := newCart(true)
	require.NoError(t, c.Add(productA))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Subtotal())
}

func TestProperty_SubtotalMatchesLines(t *testing.T) {
	catalogue := []catalog.Product{productA, productB, productC}

	// each op is one int: kind (add, set, remove), product index, quantity
	decode := func(n int) (kind, product, quantity int) {
		return n % 3, (n / 3) % 3, n/9 - 2
	}

	properties := gopter.NewProperties(nil)

	properties.Property("subtotal and shipping follow the lines after any edit sequence", prop.ForAll(
		func(ops []int) bool {
			c := newCart(true)
			cfg := config.Default().Store

			for _, n := range ops {
				kind, idx, quantity := decode(n)
				p := catalogue[idx]
				switch kind {
				case 0:
					_ = c.Add(p)
				case 1:
					c.SetQuantity(p.ID, quantity)
				case 2:
					c.Remove(p.ID)
				}

				var want int64
				for _, l := range c.Lines() {
					if l.Quantity < 1 {
						return false
					}
					want += l.DiscountPrice * int64(l.Quantity)
				}
				if c.Subtotal() != want {
					return false
				}
				wantShipping := cfg.ShippingFee
				if want > cfg.FreeShippingThreshold {
					wantShipping = 0
				}
				if c.ShippingCost() != wantShipping || c.Total() != want+wantShipping {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 80)),
	))

	properties.TestingRun(t)
}
