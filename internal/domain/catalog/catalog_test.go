//go:build unit

package catalog_test

import (
	"testing"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	t.Run("categories keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{catalog.CategoryCoffee, catalog.CategoryNonCoffee}, c.Categories())
	})

	t.Run("drink lookup is case-insensitive", func(t *testing.T) {
		entry, err := c.FindDrink("vanilla LATTE")
		require.NoError(t, err)
		assert.Equal(t, "Vanilla Latte", entry.Name())
		assert.Equal(t, int64(5500), entry.BasePrice())
		assert.Equal(t, catalog.CategoryCoffee, entry.Category())
	})

	t.Run("unknown drink", func(t *testing.T) {
		_, err := c.FindDrink("Bubble Tea")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnknownItem))
	})

	t.Run("permitted temperatures", func(t *testing.T) {
		temps, err := c.PermittedTemperatures("Cappuccino")
		require.NoError(t, err)
		assert.Equal(t, []catalog.Temperature{catalog.TempHot}, temps)

		temps, err = c.PermittedTemperatures("Americano")
		require.NoError(t, err)
		assert.Equal(t, []catalog.Temperature{catalog.TempHot, catalog.TempIce}, temps)
	})

	t.Run("size deltas", func(t *testing.T) {
		d, err := c.SizeDelta(catalog.SizeRegular)
		require.NoError(t, err)
		assert.Equal(t, int64(0), d)

		d, err = c.SizeDelta("large")
		require.NoError(t, err)
		assert.Equal(t, int64(500), d)

		_, err = c.SizeDelta("Venti")
		assert.True(t, errs.Is(err, errs.ErrInvalidSize))
	})

	t.Run("add-on deltas", func(t *testing.T) {
		d, err := c.AddOnDelta("Extra Shot")
		require.NoError(t, err)
		assert.Equal(t, int64(500), d)

		_, err = c.AddOnDelta("Gold Flakes")
		assert.True(t, errs.Is(err, errs.ErrUnknownItem))
	})

	t.Run("drinks by category", func(t *testing.T) {
		var names []string
		for _, e := range c.DrinksIn(catalog.CategoryNonCoffee) {
			names = append(names, e.Name())
		}
		want := []string{"Green Tea Latte", "Chocolate", "Citron Tea", "Chamomile Tea", "Peppermint Tea"}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Errorf("DrinksIn mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("phrases include the lower-cased name", func(t *testing.T) {
		entry, err := c.FindDrink("Cafe Latte")
		require.NoError(t, err)
		assert.Contains(t, entry.Phrases(), "cafe latte")
	})

	t.Run("sole temperature", func(t *testing.T) {
		espresso, err := c.FindDrink("Espresso")
		require.NoError(t, err)
		sole, ok := espresso.SoleTemperature()
		assert.True(t, ok)
		assert.Equal(t, catalog.TempHot, sole)

		americano, err := c.FindDrink("Americano")
		require.NoError(t, err)
		_, ok = americano.SoleTemperature()
		assert.False(t, ok)
	})
}

func TestNewCatalogValidation(t *testing.T) {
	valid := func() catalog.Spec {
		return catalog.Spec{
			Drinks: []catalog.DrinkSpec{{Name: "Tea", Category: "Tea", BasePrice: 1000, Temperatures: []catalog.Temperature{catalog.TempHot}}},
			Sizes:  []catalog.PricedSpec{{Name: "Cup"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*catalog.Spec)
		wantErr bool
	}{
		{name: "minimal spec", mutate: func(*catalog.Spec) {}},
		{name: "no drinks", mutate: func(s *catalog.Spec) { s.Drinks = nil }, wantErr: true},
		{name: "no sizes", mutate: func(s *catalog.Spec) { s.Sizes = nil }, wantErr: true},
		{name: "negative base price", mutate: func(s *catalog.Spec) { s.Drinks[0].BasePrice = -1 }, wantErr: true},
		{name: "no temperature", mutate: func(s *catalog.Spec) { s.Drinks[0].Temperatures = nil }, wantErr: true},
		{name: "invalid temperature", mutate: func(s *catalog.Spec) { s.Drinks[0].Temperatures = []catalog.Temperature{"WARM"} }, wantErr: true},
		{
			name: "duplicate drink in category",
			mutate: func(s *catalog.Spec) {
				s.Drinks = append(s.Drinks, catalog.DrinkSpec{Name: "tea", Category: "Tea", BasePrice: 1, Temperatures: []catalog.Temperature{catalog.TempIce}})
			},
			wantErr: true,
		},
		{name: "negative add-on delta", mutate: func(s *catalog.Spec) { s.AddOns = []catalog.PricedSpec{{Name: "Honey", Delta: -100}} }, wantErr: true},
		{name: "unsupported payment", mutate: func(s *catalog.Spec) { s.Payments = []catalog.PaymentSpec{{Method: "CHEQUE"}} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid()
			tt.mutate(&spec)
			c, err := catalog.New(spec)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	m, ok := catalog.ParsePaymentMethod(" card ")
	assert.True(t, ok)
	assert.Equal(t, catalog.PaymentCard, m)

	_, ok = catalog.ParsePaymentMethod("bitcoin")
	assert.False(t, ok)
}
