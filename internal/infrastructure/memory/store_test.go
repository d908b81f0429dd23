package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newStore(t *testing.T, opts ...memory.Option) *memory.Store {
	t.Helper()
	seed, err := memory.DefaultSeed()
	require.NoError(t, err)
	return memory.NewStore(seed, opts...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultSeed_CargaProductosYReglas(t *testing.T) {
	seed, err := memory.DefaultSeed()
	require.NoError(t, err)

	require.Len(t, seed.Products, 4)
	require.Len(t, seed.PricingRules, 5)

	p := seed.Products[0]
	assert.Equal(t, 1, p.ID)
	require.Len(t, p.Batches, 2)
	assert.Equal(t, "PCM-2026-001", p.Batches[0].BatchNumber)
	assert.Equal(t, time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC), p.Batches[0].ExpiryDate)
	assert.Equal(t, entity.QualityPassed, p.Batches[0].QualityCheckStatus)

	r := seed.PricingRules[0]
	assert.Equal(t, entity.DiscountVolume, r.DiscountType)
	require.Len(t, r.VolumeBrackets, 3)
	assert.Nil(t, r.VolumeBrackets[2].MaxQuantity)
	require.NotNil(t, r.ValidUntil)
}

func TestParseSeed_EstadosYCalidadPorDefecto(t *testing.T) {
	data := []byte(`{
		"products": [{
			"Id": 9, "name": "X", "currentStock": 5, "reorderLevel": 10,
			"batches": [{"Id": 40, "batchNumber": "B", "expiryDate": "2027-01-01", "quantity": 5}]
		}],
		"pricingRules": []
	}`)

	seed, err := memory.ParseSeed(data)
	require.NoError(t, err)
	assert.Equal(t, entity.QualityPending, seed.Products[0].Batches[0].QualityCheckStatus)

	s := memory.NewStore(seed)
	p, err := memory.NewProductRepository(s).GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusLowStock, p.Status)
}

func TestParseSeed_FechaInvalida(t *testing.T) {
	data := []byte(`{"products": [{"Id": 1, "batches": [{"Id": 1, "expiryDate": "10/11/2026"}]}]}`)

	_, err := memory.ParseSeed(data)
	assert.Error(t, err)
}

func TestLoadSeedFile_RutaVaciaUsaEmbebidos(t *testing.T) {
	seed, err := memory.LoadSeedFile("")
	require.NoError(t, err)
	assert.Len(t, seed.Products, 4)

	_, err = memory.LoadSeedFile("/no/existe/seed.json")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_DevuelveCopias(t *testing.T) {
	repo := memory.NewProductRepository(newStore(t))
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	p.CurrentStock = 0
	p.Batches[0].Quantity = 0

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 450, again.CurrentStock)
	assert.Equal(t, 200, again.Batches[0].Quantity)
}

func TestProductRepository_NoEncontrado(t *testing.T) {
	repo := memory.NewProductRepository(newStore(t))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product not found")

	err = repo.Update(context.Background(), &entity.Product{ID: 99})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepository_ListOrdenadoPorID(t *testing.T) {
	repo := memory.NewProductRepository(newStore(t))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, p := range list {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestProductRepository_NextBatchIDContinuaDesdeElMaximo(t *testing.T) {
	repo := memory.NewProductRepository(newStore(t))
	ctx := context.Background()

	id, err := repo.NextBatchID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, id)

	id, err = repo.NextBatchID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas
// ──────────────────────────────────────────────────────────────────────────────

func TestPricingRuleRepository_CRUD(t *testing.T) {
	repo := memory.NewPricingRuleRepository(newStore(t))
	ctx := context.Background()

	rule := &entity.PricingRule{Name: "nueva", DiscountType: entity.DiscountPromotional}
	require.NoError(t, repo.Create(ctx, rule))
	assert.Equal(t, 6, rule.ID)

	got, err := repo.GetByID(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "nueva", got.Name)

	got.Name = "renombrada"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "renombrada", got.Name)

	require.NoError(t, repo.Delete(ctx, 6))
	_, err = repo.GetByID(ctx, 6)
	assert.ErrorIs(t, err, domain.ErrPricingRuleNotFound)
	assert.EqualError(t, err, "Pricing rule not found")

	assert.ErrorIs(t, repo.Delete(ctx, 6), domain.ErrPricingRuleNotFound)
}

func TestPricingRuleRepository_ListConservaOrden(t *testing.T) {
	repo := memory.NewPricingRuleRepository(newStore(t))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, r := range list {
		assert.Equal(t, i+1, r.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos, latencia y TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryMovementRepository_PorProducto(t *testing.T) {
	repo := memory.NewInventoryMovementRepository(newStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.InventoryMovement{TransactionID: "a", ProductID: 1, Quantity: 5}))
	require.NoError(t, repo.Create(ctx, &entity.InventoryMovement{TransactionID: "b", ProductID: 2, Quantity: 3}))
	require.NoError(t, repo.Create(ctx, &entity.InventoryMovement{TransactionID: "c", ProductID: 1, Quantity: -2}))

	list, err := repo.ListByProduct(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].TransactionID)
	assert.Equal(t, "c", list[1].TransactionID)

	empty, err := repo.ListByProduct(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_LatenciaRespetaCancelacion(t *testing.T) {
	repo := memory.NewProductRepository(newStore(t, memory.WithLatency(time.Second)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestTxRunner_RepositoriosAtadosAlLock(t *testing.T) {
	s := newStore(t)
	runner := memory.NewTxRunner(s)
	ctx := context.Background()

	err := runner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		p, err := productRepo.GetByID(ctx, 4)
		if err != nil {
			return err
		}
		p.CurrentStock = 99
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.InventoryMovement{ProductID: 4, Quantity: 84})
	})
	require.NoError(t, err)

	p, err := memory.NewProductRepository(s).GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 99, p.CurrentStock)

	moves, err := memory.NewInventoryMovementRepository(s).ListByProduct(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}

func TestTxRunner_PropagaError(t *testing.T) {
	runner := memory.NewTxRunner(newStore(t))

	err := runner.Run(context.Background(), func(productRepo repository.ProductRepository, _ repository.InventoryMovementRepository) error {
		_, err := productRepo.GetByID(context.Background(), 42)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
