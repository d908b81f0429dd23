package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// Breakpoint umbral de cantidad a partir del cual aplica un tramo de volumen.
type Breakpoint struct {
	Quantity     int
	Discount     decimal.Decimal
	DiscountType entity.ValueType
	Description  string
}

// VolumeBreakpoints aplana los tramos de todas las reglas de volumen aplicables,
// ordenados por cantidad ascendente. Solo lectura.
func VolumeBreakpoints(rules []*entity.PricingRule, productID, customerID int, now time.Time) []Breakpoint {
	out := make([]Breakpoint, 0)
	for _, r := range ApplicableRules(rules, productID, customerID, now) {
		if r.DiscountType != entity.DiscountVolume {
			continue
		}
		for _, b := range r.VolumeBrackets {
			out = append(out, Breakpoint{
				Quantity:     b.MinQuantity,
				Discount:     b.DiscountValue,
				DiscountType: b.DiscountType,
				Description:  BracketDescription(b),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out
}
