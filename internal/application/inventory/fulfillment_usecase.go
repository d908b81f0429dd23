package inventory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/erp-api/internal/domain"
)

// OrderLine línea de un pedido confirmado. BatchID 0 = sin lote elegido (descuento directo).
type OrderLine struct {
	ProductID   int
	BatchID     int
	BatchNumber string
	Quantity    int
}

// LineResult resultado de una línea aplicada.
type LineResult struct {
	ProductID    int
	Allocation   *Allocation // nil si la línea usó el descuento directo
	CurrentStock int
}

// FulfillmentUseCase confirma pedidos descontando inventario línea por línea.
type FulfillmentUseCase struct {
	batches *BatchUseCase
	stock   *StockUseCase
	opts    options
}

// NewFulfillmentUseCase construye el caso de uso.
func NewFulfillmentUseCase(batches *BatchUseCase, stock *StockUseCase, opts ...Option) *FulfillmentUseCase {
	return &FulfillmentUseCase{batches: batches, stock: stock, opts: newOptions(opts)}
}

// ConfirmOrder aplica las líneas en orden. La primera falla corta el proceso; las líneas
// anteriores quedan aplicadas y se devuelven junto al error.
func (uc *FulfillmentUseCase) ConfirmOrder(ctx context.Context, lines []OrderLine) ([]LineResult, error) {
	if len(lines) == 0 {
		return nil, domain.InvalidInput("order has no lines")
	}
	results := make([]LineResult, 0, len(lines))
	for i, line := range lines {
		if line.Quantity <= 0 {
			return results, domain.InvalidInput("line %d: quantity must be a positive integer", i+1)
		}
		if line.BatchID == 0 {
			p, err := uc.stock.UpdateStock(ctx, line.ProductID, line.Quantity, StockSubtract)
			if err != nil {
				return results, err
			}
			results = append(results, LineResult{ProductID: line.ProductID, CurrentStock: p.CurrentStock})
			continue
		}

		alloc, err := uc.batches.AllocateBatch(ctx, line.ProductID, line.BatchID, line.Quantity)
		if err != nil {
			label := line.BatchNumber
			if label == "" {
				label = strconv.Itoa(line.BatchID)
			}
			uc.opts.log.Warn().Err(err).
				Int("product_id", line.ProductID).
				Int("batch_id", line.BatchID).
				Int("applied_lines", len(results)).
				Msg("confirmación de pedido interrumpida")
			return results, fmt.Errorf("Failed to allocate batch %s: %w", label, err)
		}
		results = append(results, LineResult{ProductID: line.ProductID, Allocation: alloc})
	}
	return results, nil
}
