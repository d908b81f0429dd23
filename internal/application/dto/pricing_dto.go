package dto

import "github.com/shopspring/decimal"

// CalculatePriceRequest body para POST /api/pricing/calculate.
type CalculatePriceRequest struct {
	ProductID  FlexibleID       `json:"productId"`
	CustomerID FlexibleID       `json:"customerId"`
	Quantity   int              `json:"quantity" validate:"required,min=1"`
	BasePrice  *decimal.Decimal `json:"basePrice" validate:"required"`
}

// AppliedDiscountResponse una línea del detalle de descuentos.
type AppliedDiscountResponse struct {
	RuleID      int             `json:"ruleId"`
	RuleName    string          `json:"ruleName"`
	Type        string          `json:"type"`
	Discount    decimal.Decimal `json:"discount"`
	Description string          `json:"description"`
}

// PricingResultResponse resultado de una cotización.
type PricingResultResponse struct {
	OriginalPrice    decimal.Decimal           `json:"originalPrice"`
	FinalPrice       decimal.Decimal           `json:"finalPrice"`
	TotalDiscount    decimal.Decimal           `json:"totalDiscount"`
	AppliedDiscounts []AppliedDiscountResponse `json:"appliedDiscounts"`
	SavingsPercent   string                    `json:"savingsPercent"`
}

// BreakpointResponse umbral de volumen.
type BreakpointResponse struct {
	Quantity     int             `json:"quantity"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType string          `json:"discountType"`
	Description  string          `json:"description"`
}

// VolumeBracketDTO tramo de volumen; maxQuantity null = sin tope.
type VolumeBracketDTO struct {
	MinQuantity   int             `json:"minQuantity" validate:"min=0"`
	MaxQuantity   *int            `json:"maxQuantity,omitempty"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	DiscountType  string          `json:"discountType" validate:"oneof=percentage fixed"`
}

// DiscountDTO descuento único de reglas de cliente o promocionales.
type DiscountDTO struct {
	Type  string          `json:"type" validate:"oneof=percentage fixed"`
	Value decimal.Decimal `json:"value"`
}

// PricingRuleRequest body de alta, edición y validación de reglas. Fechas YYYY-MM-DD.
// La coherencia de negocio (nombre, tramos, vigencia) la revisa ValidatePricingRule.
type PricingRuleRequest struct {
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	RuleType            string             `json:"ruleType" validate:"omitempty,oneof=global customer_tier customer_specific promotional seasonal"`
	DiscountType        string             `json:"discountType" validate:"omitempty,oneof=volume customer_specific promotional"`
	IsActive            *bool              `json:"isActive"`
	Priority            int                `json:"priority"`
	ApplicableProducts  []FlexibleID       `json:"applicableProducts"`
	ApplicableCustomers []FlexibleID       `json:"applicableCustomers"`
	CustomerTiers       []string           `json:"customerTiers"`
	ValidFrom           string             `json:"validFrom" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil          string             `json:"validUntil" validate:"omitempty,datetime=2006-01-02"`
	VolumeBrackets      []VolumeBracketDTO `json:"volumeBrackets" validate:"omitempty,dive"`
	DiscountValue       *DiscountDTO       `json:"discountValue"`
	MinQuantity         int                `json:"minQuantity" validate:"min=0"`
}

// PricingRuleResponse salida de una regla.
type PricingRuleResponse struct {
	ID                  int                `json:"id"`
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	RuleType            string             `json:"ruleType"`
	DiscountType        string             `json:"discountType"`
	IsActive            bool               `json:"isActive"`
	Priority            int                `json:"priority"`
	ApplicableProducts  []int              `json:"applicableProducts"`
	ApplicableCustomers []int              `json:"applicableCustomers"`
	CustomerTiers       []string           `json:"customerTiers"`
	ValidFrom           string             `json:"validFrom,omitempty"`
	ValidUntil          string             `json:"validUntil,omitempty"`
	VolumeBrackets      []VolumeBracketDTO `json:"volumeBrackets,omitempty"`
	DiscountValue       *DiscountDTO       `json:"discountValue,omitempty"`
	MinQuantity         int                `json:"minQuantity,omitempty"`
	CreatedDate         string             `json:"createdDate"`
	LastModified        string             `json:"lastModified"`
}

// ValidationResultResponse resultado de validar una regla.
type ValidationResultResponse struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
