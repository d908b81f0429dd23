package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain"
)

func TestConfirmOrder_LoteYDescuentoDirecto(t *testing.T) {
	f := newFixture(t)

	results, err := f.fulfillment.ConfirmOrder(context.Background(), []inventory.OrderLine{
		{ProductID: 1, BatchID: 1, BatchNumber: "PCM-2026-001", Quantity: 10},
		{ProductID: 3, Quantity: 5},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NotNil(t, results[0].Allocation)
	assert.Equal(t, 10, results[0].Allocation.AllocatedQuantity)
	assert.Nil(t, results[1].Allocation)
	assert.Equal(t, 1195, results[1].CurrentStock)

	assert.Equal(t, 440, f.product(t, 1).CurrentStock)
	assert.Equal(t, 190, f.product(t, 1).Batches[0].Quantity)
}

func TestConfirmOrder_PrimerFalloCortaYConservaLineasPrevias(t *testing.T) {
	f := newFixture(t)

	results, err := f.fulfillment.ConfirmOrder(context.Background(), []inventory.OrderLine{
		{ProductID: 1, BatchID: 1, BatchNumber: "PCM-2026-001", Quantity: 10},
		{ProductID: 2, BatchID: 3, BatchNumber: "AMX-2025-088", Quantity: 999},
		{ProductID: 3, Quantity: 5},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualError(t, err, "Failed to allocate batch AMX-2025-088: Insufficient batch quantity")
	assert.Len(t, results, 1)

	assert.Equal(t, 190, f.product(t, 1).Batches[0].Quantity)
	assert.Equal(t, 60, f.product(t, 2).CurrentStock)
	assert.Equal(t, 1200, f.product(t, 3).CurrentStock)
}

func TestConfirmOrder_SinNumeroDeLoteUsaID(t *testing.T) {
	f := newFixture(t)

	_, err := f.fulfillment.ConfirmOrder(context.Background(), []inventory.OrderLine{
		{ProductID: 1, BatchID: 42, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	assert.EqualError(t, err, "Failed to allocate batch 42: Batch not found")
}

func TestConfirmOrder_PedidoVacio(t *testing.T) {
	f := newFixture(t)

	_, err := f.fulfillment.ConfirmOrder(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
