package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// ProductUseCase consultas del catálogo y mantenimiento de niveles de precio.
// El stock se maneja vía lotes y ajustes (paquete inventory).
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve el catálogo en orden de id.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// GetPricingTiers niveles de precio del producto.
func (uc *ProductUseCase) GetPricingTiers(ctx context.Context, id int) ([]entity.PricingTier, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Pricing == nil {
		return []entity.PricingTier{}, nil
	}
	return product.Pricing, nil
}

// UpdatePricingTier crea o reemplaza el precio de un nivel (por nombre, sin distinguir mayúsculas).
func (uc *ProductUseCase) UpdatePricingTier(ctx context.Context, id int, tier string, price decimal.Decimal) ([]entity.PricingTier, error) {
	tier = strings.TrimSpace(tier)
	if tier == "" {
		return nil, domain.InvalidInput("tier is required")
	}
	if price.IsNegative() {
		return nil, domain.InvalidInput("pricePerUnit cannot be negative")
	}

	var tiers []entity.PricingTier
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.InventoryMovementRepository) error {
		product, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		found := false
		for i := range product.Pricing {
			if strings.EqualFold(product.Pricing[i].Tier, tier) {
				product.Pricing[i].PricePerUnit = price
				found = true
				break
			}
		}
		if !found {
			product.Pricing = append(product.Pricing, entity.PricingTier{Tier: tier, PricePerUnit: price})
		}
		tiers = product.Pricing
		return productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return tiers, nil
}
