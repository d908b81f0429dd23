package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	domaininv "github.com/jhoicas/erp-api/internal/domain/inventory"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// ReorderSuggestion producto completo con la cantidad sugerida de compra.
type ReorderSuggestion struct {
	Product                *entity.Product
	SuggestedOrderQuantity int
	// EstimatedCost = SuggestedOrderQuantity * precio del primer nivel; cero si no hay precios.
	EstimatedCost decimal.Decimal
}

// ReplenishmentUseCase detecta productos con stock bajo y arma la lista de reposición.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	opts        options
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, opts ...Option) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, opts: newOptions(opts)}
}

// GetLowStock productos con CurrentStock <= ReorderLevel, en orden de id.
func (uc *ReplenishmentUseCase) GetLowStock(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p.IsBelowReorderLevel() {
			out = append(out, p)
		}
	}
	return out, nil
}

// CheckReorderPoints sugerencias de compra para todos los productos con stock bajo,
// en orden de catálogo.
func (uc *ReplenishmentUseCase) CheckReorderPoints(ctx context.Context) ([]ReorderSuggestion, error) {
	low, err := uc.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ReorderSuggestion, 0, len(low))
	for _, p := range low {
		out = append(out, suggestionFor(p))
	}
	uc.opts.log.Debug().Int("count", len(out)).Msg("puntos de reorden evaluados")
	return out, nil
}

// GetReorderSuggestion sugerencia para cualquier producto existente, esté o no bajo
// su nivel de reorden.
func (uc *ReplenishmentUseCase) GetReorderSuggestion(ctx context.Context, productID int) (*ReorderSuggestion, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	s := suggestionFor(p)
	return &s, nil
}

func suggestionFor(p *entity.Product) ReorderSuggestion {
	qty := domaininv.SuggestedOrderQuantity(p.CurrentStock, p.ReorderLevel)
	cost := decimal.Zero
	if len(p.Pricing) > 0 {
		cost = domaininv.EstimatedOrderCost(qty, p.Pricing[0].PricePerUnit)
	}
	return ReorderSuggestion{
		Product:                p,
		SuggestedOrderQuantity: qty,
		EstimatedCost:          cost,
	}
}
