// Package memory implementa los repositorios sobre tablas en memoria sembradas desde
// fixtures. Todas las mutaciones pasan por un único mutex: un solo escritor a la vez
// sobre la tabla de productos, lotes y reglas.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// Seed datos iniciales del almacén.
type Seed struct {
	Products     []*entity.Product
	PricingRules []*entity.PricingRule
}

// Option configura el Store.
type Option func(*Store)

// WithLatency simula la latencia de un backend remoto antes de cada operación.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// Store tablas en memoria. Los valores se guardan y se devuelven como copias.
type Store struct {
	mu        sync.Mutex
	latency   time.Duration
	products  map[int]*entity.Product
	rules     []*entity.PricingRule
	movements map[int][]*entity.InventoryMovement

	// batchCounter es el último id de lote asignado; se siembra con el máximo de los fixtures.
	batchCounter int
}

// NewStore construye el almacén a partir del seed.
func NewStore(seed Seed, opts ...Option) *Store {
	s := &Store{
		products:  make(map[int]*entity.Product, len(seed.Products)),
		rules:     make([]*entity.PricingRule, 0, len(seed.PricingRules)),
		movements: make(map[int][]*entity.InventoryMovement),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, p := range seed.Products {
		if p == nil {
			continue
		}
		c := p.Clone()
		if c.Status == "" {
			c.RefreshStatus()
		}
		s.products[c.ID] = c
		for _, b := range c.Batches {
			if b.ID > s.batchCounter {
				s.batchCounter = b.ID
			}
		}
	}
	for _, r := range seed.PricingRules {
		if r != nil {
			s.rules = append(s.rules, r.Clone())
		}
	}
	return s
}

// enter aplica la latencia simulada y toma el lock, salvo que el caller ya lo tenga (tx).
// Dentro de una tx no se vuelve a consultar el contexto: ya se verificó al tomar el lock.
func (s *Store) enter(ctx context.Context, locked bool) (func(), error) {
	if locked {
		return func() {}, nil
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ── productos ─────────────────────────────────────────────────────────────────

func (s *Store) getProduct(id int) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p.Clone(), nil
}

func (s *Store) listProducts() []*entity.Product {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) updateProduct(p *entity.Product) error {
	if p == nil {
		return domain.ErrInvalidInput
	}
	if _, ok := s.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	s.products[p.ID] = p.Clone()
	return nil
}

func (s *Store) nextBatchID() int {
	s.batchCounter++
	return s.batchCounter
}

// ── reglas de precio ──────────────────────────────────────────────────────────

func (s *Store) ruleIndex(id int) int {
	for i, r := range s.rules {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) createRule(rule *entity.PricingRule) error {
	if rule == nil {
		return domain.ErrInvalidInput
	}
	maxID := 0
	for _, r := range s.rules {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	rule.ID = maxID + 1
	s.rules = append(s.rules, rule.Clone())
	return nil
}

func (s *Store) getRule(id int) (*entity.PricingRule, error) {
	i := s.ruleIndex(id)
	if i < 0 {
		return nil, domain.ErrPricingRuleNotFound
	}
	return s.rules[i].Clone(), nil
}

func (s *Store) updateRule(rule *entity.PricingRule) error {
	if rule == nil {
		return domain.ErrInvalidInput
	}
	i := s.ruleIndex(rule.ID)
	if i < 0 {
		return domain.ErrPricingRuleNotFound
	}
	s.rules[i] = rule.Clone()
	return nil
}

func (s *Store) deleteRule(id int) error {
	i := s.ruleIndex(id)
	if i < 0 {
		return domain.ErrPricingRuleNotFound
	}
	s.rules = append(s.rules[:i], s.rules[i+1:]...)
	return nil
}

func (s *Store) listRules() []*entity.PricingRule {
	out := make([]*entity.PricingRule, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r.Clone())
	}
	return out
}

// ── movimientos ───────────────────────────────────────────────────────────────

func (s *Store) createMovement(m *entity.InventoryMovement) error {
	if m == nil {
		return domain.ErrInvalidInput
	}
	c := *m
	s.movements[m.ProductID] = append(s.movements[m.ProductID], &c)
	return nil
}

func (s *Store) listMovements(productID int) []*entity.InventoryMovement {
	src := s.movements[productID]
	out := make([]*entity.InventoryMovement, 0, len(src))
	for _, m := range src {
		c := *m
		out = append(out, &c)
	}
	return out
}
