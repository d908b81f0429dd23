package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// PricingRuleRepository define el puerto de persistencia para PricingRule.
type PricingRuleRepository interface {
	// Create asigna el ID (máximo actual + 1).
	Create(ctx context.Context, rule *entity.PricingRule) error
	GetByID(ctx context.Context, id int) (*entity.PricingRule, error)
	Update(ctx context.Context, rule *entity.PricingRule) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*entity.PricingRule, error)
}
