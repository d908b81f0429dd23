package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_SumaYRecalculaEstado(t *testing.T) {
	f := newFixture(t)

	p, err := f.stock.UpdateStock(context.Background(), 4, 100, inventory.StockAdd)
	require.NoError(t, err)

	assert.Equal(t, 115, p.CurrentStock)
	assert.Equal(t, entity.ProductStatusActive, p.Status)
	assert.Equal(t, 115, f.product(t, 4).CurrentStock)
}

func TestUpdateStock_RestaConPisoEnCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.stock.UpdateStock(ctx, 4, 500, inventory.StockSubtract)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CurrentStock)
	assert.Equal(t, entity.ProductStatusLowStock, p.Status)

	moves, err := f.batches.ListMovements(ctx, 4)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, entity.MovementTypeStockSubtract, moves[0].Type)
	assert.Equal(t, -15, moves[0].Quantity)
	assert.Equal(t, 0, moves[0].BatchID)
}

func TestUpdateStock_NoTocaLotes(t *testing.T) {
	f := newFixture(t)

	_, err := f.stock.UpdateStock(context.Background(), 1, 100, inventory.StockSubtract)
	require.NoError(t, err)

	p := f.product(t, 1)
	assert.Equal(t, 350, p.CurrentStock)
	assert.Equal(t, 450, p.BatchTotal())
}

func TestUpdateStock_PasaABajoStock(t *testing.T) {
	f := newFixture(t)

	p, err := f.stock.UpdateStock(context.Background(), 1, 350, inventory.StockSubtract)
	require.NoError(t, err)
	assert.Equal(t, 100, p.CurrentStock)
	assert.Equal(t, entity.ProductStatusLowStock, p.Status)
}

func TestUpdateStock_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.stock.UpdateStock(ctx, 1, 5, inventory.StockOperation("multiply"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.stock.UpdateStock(ctx, 1, -5, inventory.StockAdd)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.stock.UpdateStock(ctx, 99, 5, inventory.StockAdd)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStock(t *testing.T) {
	f := newFixture(t)

	list, err := f.replenishment.GetLowStock(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, 4, list[1].ID)
}

func TestCheckReorderPoints_ProductoCompletoEnOrdenDeCatalogo(t *testing.T) {
	f := newFixture(t)

	list, err := f.replenishment.CheckReorderPoints(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 2, list[0].Product.ID)
	assert.Equal(t, "Amoxicillin 250mg Capsules", list[0].Product.Name)
	assert.Len(t, list[0].Product.Batches, 2)
	assert.Equal(t, 100, list[0].SuggestedOrderQuantity)
	assert.Equal(t, "12000", list[0].EstimatedCost.String())

	assert.Equal(t, 4, list[1].Product.ID)
	assert.Equal(t, 25, list[1].SuggestedOrderQuantity)
	assert.Equal(t, "4500", list[1].EstimatedCost.String())
}

func TestCheckReorderPoints_NoReordenaPorDeficit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Producto 2 queda 1 unidad bajo su nivel; el 4 sigue 5 unidades bajo el suyo
	_, err := f.stock.UpdateStock(ctx, 2, 19, inventory.StockAdd)
	require.NoError(t, err)

	list, err := f.replenishment.CheckReorderPoints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].Product.ID)
	assert.Equal(t, 4, list[1].Product.ID)
}

func TestGetReorderSuggestion_CualquierProducto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.replenishment.GetReorderSuggestion(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, s.SuggestedOrderQuantity)

	// Sobre su nivel de reorden: max(2*100-450, 100) al precio del primer nivel
	s, err = f.replenishment.GetReorderSuggestion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Product.ID)
	assert.Equal(t, 100, s.SuggestedOrderQuantity)
	assert.Equal(t, "2500", s.EstimatedCost.String())

	_, err = f.replenishment.GetReorderSuggestion(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
