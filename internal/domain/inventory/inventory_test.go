package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/erp-api/internal/domain/inventory"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestSuggestedOrderQuantity(t *testing.T) {
	cases := []struct {
		name             string
		current, reorder int
		want             int
	}{
		{"bajo el nivel", 60, 80, 100},
		{"stock en cero", 0, 10, 20},
		{"justo en el nivel", 20, 20, 20},
		{"por encima del doble", 100, 40, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.SuggestedOrderQuantity(tc.current, tc.reorder))
		})
	}
}

func TestEstimatedOrderCost(t *testing.T) {
	got := inventory.EstimatedOrderCost(25, decimal.RequireFromString("21.5"))
	assert.Equal(t, "537.5", got.String())
}

func TestApplyStockDelta_PisoEnCero(t *testing.T) {
	assert.Equal(t, 25, inventory.ApplyStockDelta(15, 10))
	assert.Equal(t, 5, inventory.ApplyStockDelta(15, -10))
	assert.Equal(t, 0, inventory.ApplyStockDelta(15, -500))
}

func TestDaysToExpiry(t *testing.T) {
	assert.Equal(t, 23, inventory.DaysToExpiry(date(2026, 11, 10), now))
	assert.Equal(t, -17, inventory.DaysToExpiry(date(2026, 10, 1), now))
	assert.Equal(t, 1, inventory.DaysToExpiry(date(2026, 10, 19), now))
}

func TestExpiresWithin(t *testing.T) {
	expiry := date(2026, 11, 10)

	assert.True(t, inventory.ExpiresWithin(expiry, now, 30))
	assert.True(t, inventory.ExpiresWithin(expiry, now, 23))
	assert.False(t, inventory.ExpiresWithin(expiry, now, 22))
	// Un lote ya vencido cae en cualquier ventana, incluso 0
	assert.True(t, inventory.ExpiresWithin(date(2026, 10, 1), now, 0))
}

func TestExpiresWithin_VentanaEnorme(t *testing.T) {
	assert.True(t, inventory.ExpiresWithin(date(2026, 10, 1), now, 200000))
	assert.True(t, inventory.ExpiresWithin(date(2029, 1, 31), now, 200000))
	assert.True(t, inventory.ExpiresWithin(date(2029, 1, 31), now, 1<<40))
}
