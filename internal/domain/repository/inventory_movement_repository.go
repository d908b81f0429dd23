package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el libro de movimientos.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListByProduct devuelve los movimientos en orden de registro.
	ListByProduct(ctx context.Context, productID int) ([]*entity.InventoryMovement, error)
}
