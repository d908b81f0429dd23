package memory

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepository)(nil)

// InventoryMovementRepository libro de movimientos en memoria.
type InventoryMovementRepository struct {
	s      *Store
	locked bool
}

// NewInventoryMovementRepository construye el repositorio.
func NewInventoryMovementRepository(s *Store) *InventoryMovementRepository {
	return &InventoryMovementRepository{s: s}
}

func (r *InventoryMovementRepository) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	unlock, err := r.s.enter(ctx, r.locked)
	if err != nil {
		return err
	}
	defer unlock()
	return r.s.createMovement(movement)
}

func (r *InventoryMovementRepository) ListByProduct(ctx context.Context, productID int) ([]*entity.InventoryMovement, error) {
	unlock, err := r.s.enter(ctx, r.locked)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.s.listMovements(productID), nil
}
