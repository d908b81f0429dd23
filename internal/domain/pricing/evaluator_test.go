package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(v int) *int { return &v }

func volumeRule(id int, brackets ...entity.VolumeBracket) *entity.PricingRule {
	return &entity.PricingRule{
		ID:                 id,
		Name:               "volume",
		RuleType:           entity.RuleTypeCustomerTier,
		DiscountType:       entity.DiscountVolume,
		IsActive:           true,
		ApplicableProducts: []int{1},
		VolumeBrackets:     brackets,
	}
}

func pct(minQty int, maxQty *int, value string) entity.VolumeBracket {
	return entity.VolumeBracket{MinQuantity: minQty, MaxQuantity: maxQty, DiscountValue: dec(value), DiscountType: entity.ValuePercentage}
}

func customerRule(id int, customers []int, tiers []string, kind entity.ValueType, value string) *entity.PricingRule {
	return &entity.PricingRule{
		ID:                  id,
		Name:                "contract",
		RuleType:            entity.RuleTypeCustomerSpecific,
		DiscountType:        entity.DiscountCustomerSpecific,
		IsActive:            true,
		ApplicableProducts:  []int{1},
		ApplicableCustomers: customers,
		CustomerTiers:       tiers,
		DiscountValue:       &entity.Discount{Type: kind, Value: dec(value)},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_VolumenCincoPorCiento(t *testing.T) {
	rules := []*entity.PricingRule{volumeRule(1, pct(10, nil, "5"))}

	res := pricing.Calculate(rules, 1, 7, 10, dec("100"), now)

	assert.Equal(t, "100", res.OriginalPrice.String())
	assert.Equal(t, "95", res.FinalPrice.String())
	assert.Equal(t, "5", res.TotalDiscount.String())
	assert.Equal(t, "5.0", res.SavingsPercent)
	require.Len(t, res.AppliedDiscounts, 1)
	assert.Equal(t, entity.DiscountVolume, res.AppliedDiscounts[0].Type)
	assert.Equal(t, "5% off for 10+ units", res.AppliedDiscounts[0].Description)
}

func TestCalculate_VolumeYDescuentoFijoDeCliente(t *testing.T) {
	rules := []*entity.PricingRule{
		customerRule(2, []int{7}, []string{"hospital"}, entity.ValueFixed, "3"),
		volumeRule(1, pct(10, nil, "5")),
	}

	res := pricing.Calculate(rules, 1, 7, 10, dec("100"), now)

	assert.Equal(t, "92", res.FinalPrice.String())
	assert.Equal(t, "8", res.TotalDiscount.String())
	assert.Equal(t, "8.0", res.SavingsPercent)
	require.Len(t, res.AppliedDiscounts, 2)
	// El volumen se aplica primero aunque la regla venga después en la lista
	assert.Equal(t, entity.DiscountVolume, res.AppliedDiscounts[0].Type)
	assert.Equal(t, entity.DiscountCustomerSpecific, res.AppliedDiscounts[1].Type)
	assert.Equal(t, "Customer-specific discount: 3 ₹", res.AppliedDiscounts[1].Description)
}

func TestCalculate_DescuentosCompuestos(t *testing.T) {
	rules := []*entity.PricingRule{
		volumeRule(1, pct(1, nil, "10")),
		volumeRule(2, pct(1, nil, "10")),
	}

	res := pricing.Calculate(rules, 1, 7, 5, dec("100"), now)

	assert.Equal(t, "81", res.FinalPrice.String())
	assert.Equal(t, "19.0", res.SavingsPercent)
}

func TestCalculate_UnSoloTramoPorRegla(t *testing.T) {
	rules := []*entity.PricingRule{
		volumeRule(1, pct(10, intPtr(49), "5"), pct(10, nil, "20"), pct(50, nil, "8")),
	}

	res := pricing.Calculate(rules, 1, 7, 20, dec("100"), now)

	require.Len(t, res.AppliedDiscounts, 1)
	assert.Equal(t, "95", res.FinalPrice.String())
}

func TestCalculate_TramoRespetaMaximo(t *testing.T) {
	rules := []*entity.PricingRule{
		volumeRule(1, pct(10, intPtr(49), "5"), pct(50, intPtr(99), "8"), pct(100, nil, "12")),
	}

	assert.Equal(t, "100", pricing.Calculate(rules, 1, 7, 9, dec("100"), now).FinalPrice.String())
	assert.Equal(t, "95", pricing.Calculate(rules, 1, 7, 49, dec("100"), now).FinalPrice.String())
	assert.Equal(t, "92", pricing.Calculate(rules, 1, 7, 50, dec("100"), now).FinalPrice.String())
	assert.Equal(t, "88", pricing.Calculate(rules, 1, 7, 500, dec("100"), now).FinalPrice.String())
}

func TestCalculate_PrecioFinalNuncaNegativo(t *testing.T) {
	rules := []*entity.PricingRule{customerRule(2, []int{7}, nil, entity.ValueFixed, "150")}

	res := pricing.Calculate(rules, 1, 7, 1, dec("100"), now)

	assert.True(t, res.FinalPrice.IsZero())
	assert.Equal(t, "100", res.TotalDiscount.String())
	assert.Equal(t, "100.0", res.SavingsPercent)
}

func TestCalculate_PrecioBaseCero(t *testing.T) {
	rules := []*entity.PricingRule{volumeRule(1, pct(1, nil, "5"))}

	res := pricing.Calculate(rules, 1, 7, 10, decimal.Zero, now)

	assert.True(t, res.FinalPrice.IsZero())
	assert.Equal(t, "0", res.SavingsPercent)
}

func TestCalculate_SinReglasAplicables(t *testing.T) {
	res := pricing.Calculate(nil, 1, 7, 10, dec("100"), now)

	assert.Equal(t, "100", res.FinalPrice.String())
	assert.Empty(t, res.AppliedDiscounts)
	assert.Equal(t, "0.0", res.SavingsPercent)
}

func TestCalculate_PromocionalRequiereCantidadMinima(t *testing.T) {
	promo := &entity.PricingRule{
		ID:                 3,
		Name:               "promo",
		Description:        "Monsoon sale",
		RuleType:           entity.RuleTypeSeasonal,
		DiscountType:       entity.DiscountPromotional,
		IsActive:           true,
		ApplicableProducts: []int{1},
		DiscountValue:      &entity.Discount{Type: entity.ValuePercentage, Value: dec("10")},
		MinQuantity:        20,
	}
	rules := []*entity.PricingRule{promo}

	below := pricing.Calculate(rules, 1, 7, 19, dec("100"), now)
	assert.Empty(t, below.AppliedDiscounts)

	at := pricing.Calculate(rules, 1, 7, 20, dec("100"), now)
	require.Len(t, at.AppliedDiscounts, 1)
	assert.Equal(t, "90", at.FinalPrice.String())
	assert.Equal(t, "Monsoon sale", at.AppliedDiscounts[0].Description)
}

func TestCalculate_IgnoraReglasInactivasOFueraDeVigencia(t *testing.T) {
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	inactive := volumeRule(1, pct(1, nil, "5"))
	inactive.IsActive = false
	expired := volumeRule(2, pct(1, nil, "5"))
	expired.ValidUntil = &past
	notYet := volumeRule(3, pct(1, nil, "5"))
	notYet.ValidFrom = &future

	res := pricing.Calculate([]*entity.PricingRule{inactive, expired, notYet}, 1, 7, 10, dec("100"), now)

	assert.Empty(t, res.AppliedDiscounts)
	assert.Equal(t, "100", res.FinalPrice.String())
}

func TestCalculate_ProductoNoListadoSoloReglasGlobales(t *testing.T) {
	scoped := volumeRule(1, pct(1, nil, "5"))
	global := volumeRule(2, pct(1, nil, "10"))
	global.RuleType = entity.RuleTypeGlobal
	global.ApplicableProducts = nil

	res := pricing.Calculate([]*entity.PricingRule{scoped, global}, 99, 7, 10, dec("100"), now)

	require.Len(t, res.AppliedDiscounts, 1)
	assert.Equal(t, 2, res.AppliedDiscounts[0].RuleID)
}

// Una regla sin CustomerTiers aplica a cualquier cliente aunque liste clientes.
func TestCalculate_SinNivelesDeClienteAplicaATodos(t *testing.T) {
	open := customerRule(2, []int{1}, nil, entity.ValueFixed, "3")
	restricted := customerRule(3, []int{1}, []string{"hospital"}, entity.ValueFixed, "4")

	res := pricing.Calculate([]*entity.PricingRule{open, restricted}, 1, 99, 1, dec("100"), now)

	require.Len(t, res.AppliedDiscounts, 1)
	assert.Equal(t, 2, res.AppliedDiscounts[0].RuleID)
	assert.Equal(t, "97", res.FinalPrice.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// VolumeBreakpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestVolumeBreakpoints_OrdenAscendente(t *testing.T) {
	rules := []*entity.PricingRule{
		volumeRule(1, pct(100, nil, "12"), pct(10, intPtr(49), "5")),
		volumeRule(2, pct(50, nil, "8")),
		customerRule(3, []int{7}, nil, entity.ValueFixed, "3"),
	}

	got := pricing.VolumeBreakpoints(rules, 1, 7, now)

	require.Len(t, got, 3)
	assert.Equal(t, 10, got[0].Quantity)
	assert.Equal(t, 50, got[1].Quantity)
	assert.Equal(t, 100, got[2].Quantity)
	assert.Equal(t, "8% off for 50+ units", got[1].Description)
	assert.Equal(t, entity.ValuePercentage, got[2].DiscountType)
}

func TestVolumeBreakpoints_SinReglas(t *testing.T) {
	got := pricing.VolumeBreakpoints(nil, 1, 7, now)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
