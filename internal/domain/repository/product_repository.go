package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product y sus lotes (DIP).
// Las implementaciones devuelven copias: mutar el resultado no altera el almacén
// hasta llamar a Update.
type ProductRepository interface {
	// GetByID devuelve domain.ErrProductNotFound si el id no existe.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// NextBatchID reserva el siguiente id de lote, único entre todos los productos.
	NextBatchID(ctx context.Context) (int, error)
}
