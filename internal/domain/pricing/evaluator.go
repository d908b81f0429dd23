// Package pricing implementa el motor de reglas de precios (servicio de dominio puro):
// selección de reglas activas y aplicables, y descuentos encadenados en orden fijo
// volumen -> cliente -> promocional.
package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// AppliedDiscount una línea del rastro de descuentos aplicados.
type AppliedDiscount struct {
	RuleID      int
	RuleName    string
	Type        entity.DiscountType
	Discount    decimal.Decimal
	Description string
}

// Result precio final y su explicación.
type Result struct {
	OriginalPrice    decimal.Decimal
	FinalPrice       decimal.Decimal
	TotalDiscount    decimal.Decimal
	AppliedDiscounts []AppliedDiscount
	SavingsPercent   string // un decimal, "0" si OriginalPrice es 0
}

// ApplicableRules filtra las reglas activas en now que aplican al par (producto, cliente),
// conservando el orden de entrada.
func ApplicableRules(rules []*entity.PricingRule, productID, customerID int, now time.Time) []*entity.PricingRule {
	out := make([]*entity.PricingRule, 0, len(rules))
	for _, r := range rules {
		if r == nil || !r.IsActiveAt(now) {
			continue
		}
		if !r.AppliesToProduct(productID) || !r.AppliesToCustomer(customerID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Calculate evalúa las reglas sobre basePrice. Cada descuento se calcula sobre el
// precio acumulado (no sobre el original) y el resultado nunca es negativo.
func Calculate(rules []*entity.PricingRule, productID, customerID, quantity int, basePrice decimal.Decimal, now time.Time) Result {
	applicable := ApplicableRules(rules, productID, customerID, now)

	finalPrice := basePrice
	applied := make([]AppliedDiscount, 0)

	// 1. Volumen: primer tramo que coincide, uno por regla
	for _, r := range applicable {
		if r.DiscountType != entity.DiscountVolume {
			continue
		}
		for _, b := range r.VolumeBrackets {
			if !b.Matches(quantity) {
				continue
			}
			amount := discountAmount(finalPrice, b.DiscountType, b.DiscountValue)
			finalPrice = finalPrice.Sub(amount)
			applied = append(applied, AppliedDiscount{
				RuleID:      r.ID,
				RuleName:    r.Name,
				Type:        entity.DiscountVolume,
				Discount:    amount,
				Description: BracketDescription(b),
			})
			break
		}
	}

	// 2. Específicos de cliente
	for _, r := range applicable {
		if r.DiscountType != entity.DiscountCustomerSpecific || r.DiscountValue == nil {
			continue
		}
		amount := discountAmount(finalPrice, r.DiscountValue.Type, r.DiscountValue.Value)
		finalPrice = finalPrice.Sub(amount)
		applied = append(applied, AppliedDiscount{
			RuleID:      r.ID,
			RuleName:    r.Name,
			Type:        entity.DiscountCustomerSpecific,
			Discount:    amount,
			Description: "Customer-specific discount: " + formatValue(r.DiscountValue.Type, r.DiscountValue.Value),
		})
	}

	// 3. Promocionales con cantidad mínima
	for _, r := range applicable {
		if r.DiscountType != entity.DiscountPromotional || r.DiscountValue == nil {
			continue
		}
		if quantity < r.MinQuantity {
			continue
		}
		amount := discountAmount(finalPrice, r.DiscountValue.Type, r.DiscountValue.Value)
		finalPrice = finalPrice.Sub(amount)
		desc := r.Description
		if desc == "" {
			desc = "Promotional discount: " + formatValue(r.DiscountValue.Type, r.DiscountValue.Value)
		}
		applied = append(applied, AppliedDiscount{
			RuleID:      r.ID,
			RuleName:    r.Name,
			Type:        entity.DiscountPromotional,
			Discount:    amount,
			Description: desc,
		})
	}

	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}
	total := basePrice.Sub(finalPrice)

	return Result{
		OriginalPrice:    basePrice,
		FinalPrice:       finalPrice,
		TotalDiscount:    total,
		AppliedDiscounts: applied,
		SavingsPercent:   savingsPercent(total, basePrice),
	}
}

func discountAmount(current decimal.Decimal, kind entity.ValueType, value decimal.Decimal) decimal.Decimal {
	if kind == entity.ValuePercentage {
		return current.Mul(value).Div(hundred)
	}
	return value
}

func savingsPercent(total, base decimal.Decimal) string {
	if base.IsZero() {
		return "0"
	}
	return total.Div(base).Mul(hundred).StringFixed(1)
}

// BracketDescription texto para mostrar, p. ej. "5% off for 10+ units".
func BracketDescription(b entity.VolumeBracket) string {
	return fmt.Sprintf("%s off for %d+ units", formatValue(b.DiscountType, b.DiscountValue), b.MinQuantity)
}

func formatValue(kind entity.ValueType, value decimal.Decimal) string {
	if kind == entity.ValuePercentage {
		return value.String() + "%"
	}
	return value.String() + " ₹"
}
