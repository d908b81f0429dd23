// Package pricing orquesta el motor de reglas de precios sobre los repositorios:
// cotización de un producto, tramos por volumen y validación de reglas.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	domainpricing "github.com/jhoicas/erp-api/internal/domain/pricing"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// PricingUseCase cotiza precios aplicando las reglas vigentes.
type PricingUseCase struct {
	ruleRepo    repository.PricingRuleRepository
	productRepo repository.ProductRepository
	opts        options
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(
	ruleRepo repository.PricingRuleRepository,
	productRepo repository.ProductRepository,
	opts ...Option,
) *PricingUseCase {
	return &PricingUseCase{ruleRepo: ruleRepo, productRepo: productRepo, opts: newOptions(opts)}
}

// CalculateOptimalPrice aplica volumen, cliente y promoción sobre basePrice. Los ids no
// se validan contra el catálogo: un id desconocido solo significa cero reglas aplicables.
func (uc *PricingUseCase) CalculateOptimalPrice(ctx context.Context, productID, customerID, quantity int, basePrice decimal.Decimal) (*domainpricing.Result, error) {
	if quantity < 1 {
		return nil, domain.InvalidInput("quantity must be at least 1")
	}
	if basePrice.IsNegative() {
		return nil, domain.InvalidInput("basePrice cannot be negative")
	}

	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := domainpricing.Calculate(rules, productID, customerID, quantity, basePrice, uc.opts.now())

	uc.opts.metrics.IncPricingEvaluation()
	for _, d := range res.AppliedDiscounts {
		uc.opts.metrics.IncDiscountApplied(string(d.Type))
	}
	uc.opts.log.Debug().
		Int("product_id", productID).
		Int("customer_id", customerID).
		Int("quantity", quantity).
		Str("final_price", res.FinalPrice.String()).
		Int("discounts", len(res.AppliedDiscounts)).
		Msg("precio calculado")
	return &res, nil
}

// CalculateProductPrice cotiza con el precio del nivel retail del producto (o del primer
// nivel si no hay retail) como precio base.
func (uc *PricingUseCase) CalculateProductPrice(ctx context.Context, productID, customerID, quantity int) (*domainpricing.Result, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	base, ok := product.BasePrice()
	if !ok {
		return nil, domain.InvalidInput("product %d has no pricing tiers", productID)
	}
	return uc.CalculateOptimalPrice(ctx, productID, customerID, quantity, base)
}

// GetVolumeBreakpoints tramos de volumen aplicables, por cantidad ascendente.
func (uc *PricingUseCase) GetVolumeBreakpoints(ctx context.Context, productID, customerID int) ([]domainpricing.Breakpoint, error) {
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domainpricing.VolumeBreakpoints(rules, productID, customerID, uc.opts.now()), nil
}

// ValidatePricingRule nunca falla: los problemas vuelven en el resultado.
func (uc *PricingUseCase) ValidatePricingRule(rule *entity.PricingRule) domainpricing.ValidationResult {
	return domainpricing.Validate(rule)
}
