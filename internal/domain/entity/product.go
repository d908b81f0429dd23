package entity

import (
	"github.com/shopspring/decimal"
)

// ProductStatus estado derivado del nivel de stock.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusLowStock ProductStatus = "low_stock"
)

// TierRetail es el nivel de precio usado como precio base en cotizaciones.
const TierRetail = "retail"

// PricingTier precio por unidad para un nivel comercial (retail, wholesale, ...).
type PricingTier struct {
	Tier         string
	PricePerUnit decimal.Decimal
}

// Product representa un producto del catálogo con sus lotes.
// CurrentStock se mantiene por dos vías (lotes y ajuste directo) y puede divergir
// de la suma de Batches; ver StockConsistency en la capa de aplicación.
type Product struct {
	ID           int
	Name         string
	Category     string
	Brand        string
	BaseUOM      string
	CurrentStock int
	ReorderLevel int
	Status       ProductStatus
	Pricing      []PricingTier
	Batches      []Batch
}

// RefreshStatus recalcula Status a partir de CurrentStock y ReorderLevel.
func (p *Product) RefreshStatus() {
	if p.CurrentStock <= p.ReorderLevel {
		p.Status = ProductStatusLowStock
		return
	}
	p.Status = ProductStatusActive
}

// IsBelowReorderLevel indica si el producto debe reabastecerse.
func (p *Product) IsBelowReorderLevel() bool {
	return p.CurrentStock <= p.ReorderLevel
}

// BasePrice devuelve el precio del nivel retail o, si no existe, el del primer nivel.
func (p *Product) BasePrice() (decimal.Decimal, bool) {
	for _, t := range p.Pricing {
		if t.Tier == TierRetail {
			return t.PricePerUnit, true
		}
	}
	if len(p.Pricing) == 0 {
		return decimal.Zero, false
	}
	return p.Pricing[0].PricePerUnit, true
}

// FindBatch devuelve el índice del lote con el id dado o -1.
func (p *Product) FindBatch(batchID int) int {
	for i := range p.Batches {
		if p.Batches[i].ID == batchID {
			return i
		}
	}
	return -1
}

// BatchTotal suma las cantidades de todos los lotes.
func (p *Product) BatchTotal() int {
	total := 0
	for _, b := range p.Batches {
		total += b.Quantity
	}
	return total
}

// Clone devuelve una copia profunda (los repositorios nunca exponen su estado interno).
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.Pricing = append([]PricingTier(nil), p.Pricing...)
	c.Batches = append([]Batch(nil), p.Batches...)
	return &c
}
