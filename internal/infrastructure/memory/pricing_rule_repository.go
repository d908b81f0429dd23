package memory

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.PricingRuleRepository = (*PricingRuleRepository)(nil)

// PricingRuleRepository implementa repository.PricingRuleRepository sobre el Store.
type PricingRuleRepository struct {
	s *Store
}

// NewPricingRuleRepository construye el repositorio.
func NewPricingRuleRepository(s *Store) *PricingRuleRepository {
	return &PricingRuleRepository{s: s}
}

func (r *PricingRuleRepository) Create(ctx context.Context, rule *entity.PricingRule) error {
	unlock, err := r.s.enter(ctx, false)
	if err != nil {
		return err
	}
	defer unlock()
	return r.s.createRule(rule)
}

func (r *PricingRuleRepository) GetByID(ctx context.Context, id int) (*entity.PricingRule, error) {
	unlock, err := r.s.enter(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.s.getRule(id)
}

func (r *PricingRuleRepository) Update(ctx context.Context, rule *entity.PricingRule) error {
	unlock, err := r.s.enter(ctx, false)
	if err != nil {
		return err
	}
	defer unlock()
	return r.s.updateRule(rule)
}

func (r *PricingRuleRepository) Delete(ctx context.Context, id int) error {
	unlock, err := r.s.enter(ctx, false)
	if err != nil {
		return err
	}
	defer unlock()
	return r.s.deleteRule(id)
}

func (r *PricingRuleRepository) List(ctx context.Context) ([]*entity.PricingRule, error) {
	unlock, err := r.s.enter(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.s.listRules(), nil
}
