package pricing

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	domainpricing "github.com/jhoicas/erp-api/internal/domain/pricing"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// ValidationError regla rechazada por ValidatePricingRule. errors.Is(err, domain.ErrInvalidInput) es true.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid pricing rule: %s", strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// RuleUseCase CRUD de reglas de precios.
type RuleUseCase struct {
	repo repository.PricingRuleRepository
	opts options
}

// NewRuleUseCase construye el caso de uso.
func NewRuleUseCase(repo repository.PricingRuleRepository, opts ...Option) *RuleUseCase {
	return &RuleUseCase{repo: repo, opts: newOptions(opts)}
}

// Create valida y guarda la regla. El repositorio asigna el id. Toda regla nueva nace
// activa; para desactivarla se usa Update.
func (uc *RuleUseCase) Create(ctx context.Context, rule *entity.PricingRule) (*entity.PricingRule, error) {
	if res := domainpricing.Validate(rule); !res.IsValid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	rule.IsActive = true
	now := uc.opts.now()
	rule.CreatedDate = now
	rule.LastModified = now
	if err := uc.repo.Create(ctx, rule); err != nil {
		return nil, err
	}
	uc.opts.log.Info().Int("rule_id", rule.ID).Str("name", rule.Name).Msg("regla de precios creada")
	return rule, nil
}

// GetByID obtiene una regla.
func (uc *RuleUseCase) GetByID(ctx context.Context, id int) (*entity.PricingRule, error) {
	return uc.repo.GetByID(ctx, id)
}

// Update reemplaza la regla completa conservando id y fecha de creación.
func (uc *RuleUseCase) Update(ctx context.Context, id int, rule *entity.PricingRule) (*entity.PricingRule, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res := domainpricing.Validate(rule); !res.IsValid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	rule.ID = current.ID
	rule.CreatedDate = current.CreatedDate
	rule.LastModified = uc.opts.now()
	if err := uc.repo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// Delete elimina una regla.
func (uc *RuleUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.opts.log.Info().Int("rule_id", id).Msg("regla de precios eliminada")
	return nil
}

// List todas las reglas, activas o no.
func (uc *RuleUseCase) List(ctx context.Context) ([]*entity.PricingRule, error) {
	return uc.repo.List(ctx)
}

// GetByProduct reglas que listan el producto o son globales.
func (uc *RuleUseCase) GetByProduct(ctx context.Context, productID int) ([]*entity.PricingRule, error) {
	return uc.filter(ctx, func(r *entity.PricingRule) bool { return r.AppliesToProduct(productID) })
}

// GetByCustomer reglas que listan al cliente o son globales.
func (uc *RuleUseCase) GetByCustomer(ctx context.Context, customerID int) ([]*entity.PricingRule, error) {
	return uc.filter(ctx, func(r *entity.PricingRule) bool { return r.AppliesToCustomerList(customerID) })
}

// GetActiveRules reglas activas y vigentes ahora.
func (uc *RuleUseCase) GetActiveRules(ctx context.Context) ([]*entity.PricingRule, error) {
	now := uc.opts.now()
	return uc.filter(ctx, func(r *entity.PricingRule) bool { return r.IsActiveAt(now) })
}

func (uc *RuleUseCase) filter(ctx context.Context, keep func(*entity.PricingRule) bool) ([]*entity.PricingRule, error) {
	rules, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(rules, func(r *entity.PricingRule) bool { return !keep(r) }), nil
}
