package market_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-supermarket-chain/internal/market"
)

func TestAddStore(t *testing.T) {
	f := setup(t)
	require.Equal(t, 3, f.chain.Len())

	dup := newStore(t, market.StoreConfig{ID: 2, Name: "Otro", Catalog: f.catalog})
	err := f.chain.AddStore(dup)

	assert.ErrorIs(t, err, market.ErrDuplicateStore)
	assert.Equal(t, 3, f.chain.Len())
	s, ok := f.chain.Store(2)
	require.True(t, ok)
	assert.Equal(t, "Carrefour", s.Name())
}

func TestChainTotalRevenue(t *testing.T) {
	t.Run("sums every store", func(t *testing.T) {
		f := setup(t)
		_, _ = f.dia.RegisterSale(1, 10)
		_, _ = f.carrefour.RegisterSale(2, 5)
		_, _ = f.alvear.RegisterSale(3, 2)

		total, err := f.chain.TotalRevenue()
		require.NoError(t, err)
		assertAmount(t, "260.0", total)

		sum := f.dia.TotalRevenue().Add(f.carrefour.TotalRevenue()).Add(f.alvear.TotalRevenue())
		assertAmount(t, sum.String(), total)
	})

	t.Run("empty chain", func(t *testing.T) {
		total, err := market.NewChain().TotalRevenue()
		assert.ErrorIs(t, err, market.ErrEmptyChain)
		assert.True(t, total.IsZero())
	})
}

// Unknown stores are a zero result at chain level, while an unknown product
// is an error when registering a sale at store level.
func TestChainPerStoreQueriesTreatUnknownIDsAsZero(t *testing.T) {
	f := setup(t)
	_, _ = f.dia.RegisterSale(1, 10)

	_, err := f.dia.RegisterSale(999, 1)
	assert.ErrorIs(t, err, market.ErrProductNotFound)

	q, err := f.chain.QuantitySoldOf(42, 1)
	require.NoError(t, err)
	assert.Zero(t, q)

	q, err = f.chain.QuantitySoldOf(1, 999)
	require.NoError(t, err)
	assert.Zero(t, q)

	r, err := f.chain.RevenueOf(42, 1)
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	assert.True(t, f.chain.RevenueOfStore(42).IsZero())
}

func TestChainPerStoreQueriesDelegate(t *testing.T) {
	f := setup(t)
	_, _ = f.carrefour.RegisterSale(4, 3)
	_, _ = f.carrefour.RegisterSale(4, 2)
	_, _ = f.carrefour.RegisterSale(5, 1)

	q, err := f.chain.QuantitySoldOf(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	r, err := f.chain.RevenueOf(2, 4)
	require.NoError(t, err)
	assertAmount(t, "225", r)

	assertAmount(t, "275", f.chain.RevenueOfStore(2))

	_, err = f.chain.QuantitySoldOf(2, -1)
	assert.ErrorIs(t, err, market.ErrInvalidArgument)
	_, err = f.chain.RevenueOf(2, -1)
	assert.ErrorIs(t, err, market.ErrInvalidArgument)
}

func TestOpenStores(t *testing.T) {
	f := setup(t)
	tests := []struct {
		name string
		at   market.Clock
		day  string
		want string
	}{
		{"all open on monday morning", market.MustAt(10, 0), "Lunes", "Dia (1), Carrefour (2), Alvear (3)"},
		{"opening minute is closed", market.MustAt(8, 0), "Lunes", "Alvear (3)"},
		{"closing minute is closed", market.MustAt(22, 0), "Viernes", "Alvear (3)"},
		{"between dia and carrefour opening", market.MustAt(8, 15), "Martes", "Dia (1), Alvear (3)"},
		{"sunday", market.MustAt(10, 0), "Domingo", "Carrefour (2)"},
		{"saturday", market.MustAt(21, 45), "Sábado", "Dia (1)"},
		{"nothing open", market.MustAt(23, 30), "Lunes", ""},
		{"unknown day", market.MustAt(10, 0), "Feriado", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.chain.OpenStoresList(tc.at, tc.day))
		})
	}

	assert.Empty(t, f.chain.OpenStores(market.MustAt(23, 30), "Lunes"))
}

func TestTopStoreByRevenue(t *testing.T) {
	t.Run("ties go to the first store", func(t *testing.T) {
		f := setup(t)
		_, _ = f.dia.RegisterSale(1, 10)
		_, _ = f.carrefour.RegisterSale(2, 5)

		got, err := f.chain.TopStoreByRevenue()
		require.NoError(t, err)
		assert.Equal(t, "Dia (1). Total revenue: $100.00", got)
	})

	t.Run("highest revenue wins", func(t *testing.T) {
		f := setup(t)
		_, _ = f.dia.RegisterSale(1, 10)
		_, _ = f.alvear.RegisterSale(2, 7)

		got, err := f.chain.TopStoreByRevenue()
		require.NoError(t, err)
		assert.Equal(t, "Alvear (3). Total revenue: $140.00", got)
	})

	t.Run("no sales picks the first store", func(t *testing.T) {
		f := setup(t)
		got, err := f.chain.TopStoreByRevenue()
		require.NoError(t, err)
		assert.Equal(t, "Dia (1). Total revenue: $0.00", got)
	})

	t.Run("empty chain", func(t *testing.T) {
		got, err := market.NewChain().TopStoreByRevenue()
		assert.ErrorIs(t, err, market.ErrEmptyChain)
		assert.Empty(t, got)
	})
}

func TestTop5ProductsByVolume(t *testing.T) {
	t.Run("accumulates across stores", func(t *testing.T) {
		f := setup(t)
		_, _ = f.dia.RegisterSale(1, 10)
		_, _ = f.carrefour.RegisterSale(1, 20)
		_, _ = f.alvear.RegisterSale(2, 5)

		assert.Equal(t, "Carne: 30 - Pescado: 5", f.chain.Top5ProductsByVolume())
	})

	t.Run("no sales", func(t *testing.T) {
		f := setup(t)
		assert.Equal(t, "", f.chain.Top5ProductsByVolume())
	})

	t.Run("keeps at most five, descending, ties by first seen", func(t *testing.T) {
		f := setup(t)
		_, _ = f.dia.RegisterSale(6, 4)       // Cordero 4, seen first
		_, _ = f.dia.RegisterSale(5, 9)       // Ternera 9
		_, _ = f.carrefour.RegisterSale(1, 4) // Carne 4
		_, _ = f.carrefour.RegisterSale(2, 1) // Pescado 1, seen before Pollo
		_, _ = f.alvear.RegisterSale(3, 2)    // Pollo 2
		_, _ = f.alvear.RegisterSale(4, 4)    // Cerdo 4
		_, _ = f.alvear.RegisterSale(2, 1)    // Pescado 2

		assert.Equal(t, "Ternera: 9 - Cordero: 4 - Carne: 4 - Cerdo: 4 - Pescado: 2", f.chain.Top5ProductsByVolume())

		top := f.chain.TopProductsByVolume(-1)
		require.Len(t, top, 6)
		assert.Equal(t, "Pollo", top[5].Product.Name())
		assert.Equal(t, 2, top[5].Quantity)
	})

	t.Run("does not touch sale snapshots", func(t *testing.T) {
		f := setup(t)
		_, _ = f.dia.RegisterSale(1, 10)
		_, _ = f.carrefour.RegisterSale(1, 20)
		_ = f.chain.Top5ProductsByVolume()
		_ = f.chain.Top5ProductsByVolume()

		assert.Equal(t, 10, f.dia.SalesHistory()[0].Quantity())
		q, err := f.chain.QuantitySoldOf(2, 1)
		require.NoError(t, err)
		assert.Equal(t, 20, q)
	})
}

func TestTopProductsByVolumeProperty(t *testing.T) {
	f := setup(t)
	for i := 0; i < 30; i++ {
		s := f.chain.Stores()[i%3]
		_, err := s.RegisterSale(i%6+1, i%4+1)
		require.NoError(t, err)
	}

	top := f.chain.TopProductsByVolume(5)
	require.LessOrEqual(t, len(top), 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Quantity, top[i].Quantity)
	}
}

func TestFormatAmount(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"100", "100.00"},
		{"130.6", "130.60"},
		{"0", "0.00"},
		{"13.205", "13.21"},
	} {
		t.Run(fmt.Sprintf("%s->%s", tc.in, tc.want), func(t *testing.T) {
			assert.Equal(t, tc.want, market.FormatAmount(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestClock(t *testing.T) {
	c, err := market.At(9, 5)
	require.NoError(t, err)
	assert.Equal(t, "09:05", c.String())
	assert.True(t, c.Before(market.MustAt(9, 6)))
	assert.True(t, c.After(market.MustAt(9, 4)))
	assert.False(t, c.After(market.MustAt(9, 5)))

	for _, bad := range [][2]int{{24, 0}, {-1, 0}, {10, 60}, {10, -1}} {
		_, err := market.At(bad[0], bad[1])
		assert.ErrorIs(t, err, market.ErrInvalidArgument)
	}
}
