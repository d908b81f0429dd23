package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	domaininv "github.com/jhoicas/erp-api/internal/domain/inventory"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// StockOperation sentido de un ajuste directo de stock.
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

// StockUseCase ajuste directo del contador CurrentStock, sin pasar por lotes.
type StockUseCase struct {
	txRunner TxRunner
	opts     options
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, opts ...Option) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, opts: newOptions(opts)}
}

// UpdateStock suma o resta quantity al stock del producto. Una resta mayor al stock
// deja el contador en 0 en lugar de fallar. Los lotes no se modifican.
func (uc *StockUseCase) UpdateStock(ctx context.Context, productID, quantity int, op StockOperation) (*entity.Product, error) {
	if quantity < 0 {
		return nil, domain.InvalidInput("quantity cannot be negative")
	}
	var delta int
	var movementType string
	switch op {
	case StockAdd:
		delta, movementType = quantity, entity.MovementTypeStockAdd
	case StockSubtract:
		delta, movementType = -quantity, entity.MovementTypeStockSubtract
	default:
		return nil, domain.InvalidInput("operation must be add or subtract, got %q", op)
	}

	now := uc.opts.now()
	var updated *entity.Product
	var applied int
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		before := product.CurrentStock
		product.CurrentStock = domaininv.ApplyStockDelta(before, delta)
		product.RefreshStatus()
		applied = product.CurrentStock - before
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return movRepo.Create(ctx, &entity.InventoryMovement{
			TransactionID: uuid.New().String(),
			ProductID:     productID,
			Type:          movementType,
			Quantity:      applied,
			StockAfter:    product.CurrentStock,
			Reference:     string(op),
			Date:          now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.opts.metrics.AddStockUnits(movementType, applied)
	if total := updated.BatchTotal(); total != updated.CurrentStock && len(updated.Batches) > 0 {
		uc.opts.log.Warn().
			Int("product_id", updated.ID).
			Int("current_stock", updated.CurrentStock).
			Int("batch_total", total).
			Msg("stock diverge de la suma de lotes tras ajuste directo")
	}
	return updated, nil
}
