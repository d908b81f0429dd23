package memory

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa repository.ProductRepository sobre el Store.
type ProductRepository struct {
	s      *Store
	locked bool
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	unlock, err := r.s.enter(ctx, r.locked)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.s.getProduct(id)
}

func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	unlock, err := r.s.enter(ctx, r.locked)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.s.listProducts(), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	unlock, err := r.s.enter(ctx, r.locked)
	if err != nil {
		return err
	}
	defer unlock()
	return r.s.updateProduct(product)
}

func (r *ProductRepository) NextBatchID(ctx context.Context) (int, error) {
	unlock, err := r.s.enter(ctx, r.locked)
	if err != nil {
		return 0, err
	}
	defer unlock()
	return r.s.nextBatchID(), nil
}
