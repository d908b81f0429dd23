package inventory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	domaininv "github.com/jhoicas/erp-api/internal/domain/inventory"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/pkg/metrics"
)

// BatchUseCase gestiona los lotes de cada producto: altas, asignaciones a pedidos,
// ediciones y consultas de vencimiento. Toda mutación corre dentro de TxRunner.
type BatchUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
	opts        options
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	opts ...Option,
) *BatchUseCase {
	return &BatchUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		opts:        newOptions(opts),
	}
}

// CreateBatchInput datos de un lote nuevo. QualityCheckStatus vacío = pending.
type CreateBatchInput struct {
	BatchNumber        string
	ManufacturingDate  time.Time
	ExpiryDate         time.Time
	Quantity           int
	SupplierName       string
	QualityCheckStatus entity.QualityStatus
	StorageLocation    string
}

// UpdateBatchInput campos editables de un lote; nil = sin cambio.
type UpdateBatchInput struct {
	BatchNumber        *string
	ManufacturingDate  *time.Time
	ExpiryDate         *time.Time
	Quantity           *int
	SupplierName       *string
	QualityCheckStatus *entity.QualityStatus
	StorageLocation    *string
}

// Allocation comprobante de asignación de un lote.
type Allocation struct {
	BatchID           int
	BatchNumber       string
	AllocatedQuantity int
	ExpiryDate        time.Time
}

// BatchView lote con los datos de su producto (listados transversales).
type BatchView struct {
	entity.Batch
	ProductID       int
	ProductName     string
	ProductCategory string
}

// ExpiringBatch lote próximo a vencer. DaysToExpiry negativo = ya vencido.
type ExpiringBatch struct {
	entity.Batch
	ProductID    int
	ProductName  string
	DaysToExpiry int
}

// StockConsistency compara el contador del producto con la suma de sus lotes.
type StockConsistency struct {
	ProductID    int
	CurrentStock int
	BatchTotal   int
	Consistent   bool
}

// CreateBatch agrega un lote al producto y suma su cantidad al stock.
func (uc *BatchUseCase) CreateBatch(ctx context.Context, productID int, in CreateBatchInput) (*entity.Batch, error) {
	if strings.TrimSpace(in.BatchNumber) == "" {
		return nil, domain.InvalidInput("batchNumber is required")
	}
	if in.Quantity <= 0 {
		return nil, domain.InvalidInput("quantity must be a positive integer")
	}
	if in.ExpiryDate.IsZero() {
		return nil, domain.InvalidInput("expiryDate is required")
	}
	if in.ManufacturingDate.IsZero() {
		return nil, domain.InvalidInput("manufacturingDate is required")
	}
	if strings.TrimSpace(in.SupplierName) == "" {
		return nil, domain.InvalidInput("supplierName is required")
	}
	if strings.TrimSpace(in.StorageLocation) == "" {
		return nil, domain.InvalidInput("storageLocation is required")
	}
	if in.QualityCheckStatus == "" {
		in.QualityCheckStatus = entity.QualityPending
	}
	if !in.QualityCheckStatus.IsValid() {
		return nil, domain.InvalidInput("unknown qualityCheckStatus %q", in.QualityCheckStatus)
	}

	now := uc.opts.now()
	var created entity.Batch
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		id, err := productRepo.NextBatchID(ctx)
		if err != nil {
			return err
		}
		created = entity.Batch{
			ID:                 id,
			BatchNumber:        in.BatchNumber,
			ManufacturingDate:  in.ManufacturingDate,
			ExpiryDate:         in.ExpiryDate,
			ReceivedDate:       today(now),
			Quantity:           in.Quantity,
			SupplierName:       in.SupplierName,
			QualityCheckStatus: in.QualityCheckStatus,
			StorageLocation:    in.StorageLocation,
		}
		product.Batches = append(product.Batches, created)
		product.CurrentStock += in.Quantity
		product.RefreshStatus()
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.InventoryMovement{
			TransactionID: uuid.New().String(),
			ProductID:     productID,
			BatchID:       id,
			Type:          entity.MovementTypeBatchIn,
			Quantity:      in.Quantity,
			StockAfter:    product.CurrentStock,
			Reference:     in.BatchNumber,
			Date:          now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.opts.metrics.AddStockUnits(entity.MovementTypeBatchIn, in.Quantity)
	return &created, nil
}

// AllocateBatch descuenta quantity del lote y del stock del producto. Si el lote no
// alcanza falla con domain.ErrInsufficientStock sin mover nada.
func (uc *BatchUseCase) AllocateBatch(ctx context.Context, productID, batchID, quantity int) (*Allocation, error) {
	if quantity <= 0 {
		return nil, domain.InvalidInput("quantity must be a positive integer")
	}

	now := uc.opts.now()
	var receipt Allocation
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		idx := product.FindBatch(batchID)
		if idx < 0 {
			return domain.ErrBatchNotFound
		}
		batch := &product.Batches[idx]
		if batch.Quantity < quantity {
			return domain.ErrInsufficientStock
		}
		batch.Quantity -= quantity
		product.CurrentStock -= quantity
		product.RefreshStatus()
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		receipt = Allocation{
			BatchID:           batch.ID,
			BatchNumber:       batch.BatchNumber,
			AllocatedQuantity: quantity,
			ExpiryDate:        batch.ExpiryDate,
		}
		return movRepo.Create(ctx, &entity.InventoryMovement{
			TransactionID: uuid.New().String(),
			ProductID:     productID,
			BatchID:       batch.ID,
			Type:          entity.MovementTypeBatchAllocation,
			Quantity:      -quantity,
			StockAfter:    product.CurrentStock,
			Reference:     batch.BatchNumber,
			Date:          now,
		})
	})
	if err != nil {
		uc.opts.metrics.IncAllocation(allocationResult(err))
		return nil, err
	}
	uc.opts.metrics.IncAllocation(metrics.AllocationOK)
	uc.opts.metrics.AddStockUnits(entity.MovementTypeBatchAllocation, quantity)
	return &receipt, nil
}

func allocationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return metrics.AllocationInsufficient
	case errors.Is(err, domain.ErrNotFound):
		return metrics.AllocationNotFound
	default:
		return metrics.AllocationError
	}
}

// UpdateBatch edita un lote. Un cambio de cantidad ajusta el stock del producto por la
// diferencia, con piso en 0; el estado de calidad solo avanza de pending a passed o failed.
func (uc *BatchUseCase) UpdateBatch(ctx context.Context, productID, batchID int, in UpdateBatchInput) (*entity.Batch, error) {
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.InvalidInput("quantity cannot be negative")
	}
	if in.BatchNumber != nil && strings.TrimSpace(*in.BatchNumber) == "" {
		return nil, domain.InvalidInput("batchNumber is required")
	}

	now := uc.opts.now()
	var updated entity.Batch
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		idx := product.FindBatch(batchID)
		if idx < 0 {
			return domain.ErrBatchNotFound
		}
		batch := &product.Batches[idx]
		if in.QualityCheckStatus != nil {
			if !batch.QualityCheckStatus.CanTransitionTo(*in.QualityCheckStatus) {
				return domain.ErrInvalidTransition
			}
			batch.QualityCheckStatus = *in.QualityCheckStatus
		}
		if in.BatchNumber != nil {
			batch.BatchNumber = *in.BatchNumber
		}
		if in.ManufacturingDate != nil {
			batch.ManufacturingDate = *in.ManufacturingDate
		}
		if in.ExpiryDate != nil {
			batch.ExpiryDate = *in.ExpiryDate
		}
		if in.SupplierName != nil {
			batch.SupplierName = *in.SupplierName
		}
		if in.StorageLocation != nil {
			batch.StorageLocation = *in.StorageLocation
		}
		delta := 0
		if in.Quantity != nil {
			delta = *in.Quantity - batch.Quantity
			batch.Quantity = *in.Quantity
			product.CurrentStock = domaininv.ApplyStockDelta(product.CurrentStock, delta)
			product.RefreshStatus()
		}
		updated = *batch
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		return movRepo.Create(ctx, &entity.InventoryMovement{
			TransactionID: uuid.New().String(),
			ProductID:     productID,
			BatchID:       batch.ID,
			Type:          entity.MovementTypeBatchAdjust,
			Quantity:      delta,
			StockAfter:    product.CurrentStock,
			Reference:     batch.BatchNumber,
			Date:          now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetBatches lista los lotes de un producto.
func (uc *BatchUseCase) GetBatches(ctx context.Context, productID int) ([]entity.Batch, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Batches == nil {
		return []entity.Batch{}, nil
	}
	return product.Batches, nil
}

// GetBatchByID obtiene un lote de un producto.
func (uc *BatchUseCase) GetBatchByID(ctx context.Context, productID, batchID int) (*entity.Batch, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	idx := product.FindBatch(batchID)
	if idx < 0 {
		return nil, domain.ErrBatchNotFound
	}
	b := product.Batches[idx]
	return &b, nil
}

// GetAllBatches lista los lotes de todos los productos.
func (uc *BatchUseCase) GetAllBatches(ctx context.Context) ([]BatchView, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BatchView, 0)
	for _, p := range products {
		for _, b := range p.Batches {
			out = append(out, BatchView{Batch: b, ProductID: p.ID, ProductName: p.Name, ProductCategory: p.Category})
		}
	}
	return out, nil
}

// SearchBatches filtra por número de lote, nombre de producto o proveedor (sin distinguir mayúsculas).
func (uc *BatchUseCase) SearchBatches(ctx context.Context, query string) ([]BatchView, error) {
	all, err := uc.GetAllBatches(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	out := make([]BatchView, 0)
	for _, v := range all {
		if strings.Contains(strings.ToLower(v.BatchNumber), q) ||
			strings.Contains(strings.ToLower(v.ProductName), q) ||
			strings.Contains(strings.ToLower(v.SupplierName), q) {
			out = append(out, v)
		}
	}
	return out, nil
}

// GetExpiringSoon devuelve los lotes que vencen en los próximos days días (incluye los
// ya vencidos), del más urgente al menos urgente.
func (uc *BatchUseCase) GetExpiringSoon(ctx context.Context, days int) ([]ExpiringBatch, error) {
	if days < 0 {
		return nil, domain.InvalidInput("days cannot be negative")
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.opts.now()
	out := make([]ExpiringBatch, 0)
	for _, p := range products {
		for _, b := range p.Batches {
			if !domaininv.ExpiresWithin(b.ExpiryDate, now, days) {
				continue
			}
			out = append(out, ExpiringBatch{
				Batch:        b,
				ProductID:    p.ID,
				ProductName:  p.Name,
				DaysToExpiry: domaininv.DaysToExpiry(b.ExpiryDate, now),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysToExpiry < out[j].DaysToExpiry })
	return out, nil
}

// StockConsistency expone la diferencia entre CurrentStock y la suma de lotes. La ruta
// directa de ajuste (UpdateStock) no toca lotes, así que la divergencia es posible.
func (uc *BatchUseCase) StockConsistency(ctx context.Context, productID int) (*StockConsistency, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	total := product.BatchTotal()
	return &StockConsistency{
		ProductID:    product.ID,
		CurrentStock: product.CurrentStock,
		BatchTotal:   total,
		Consistent:   total == product.CurrentStock,
	}, nil
}

// ListMovements devuelve el libro de movimientos del producto.
func (uc *BatchUseCase) ListMovements(ctx context.Context, productID int) ([]*entity.InventoryMovement, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return uc.movRepo.ListByProduct(ctx, productID)
}
