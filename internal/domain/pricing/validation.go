package pricing

import (
	"strings"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// ValidationResult resultado de validar una regla. No es un error: el caller decide
// si persiste o no.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate revisa nombre, tipo de descuento, tramos de volumen y ventana de vigencia.
func Validate(rule *entity.PricingRule) ValidationResult {
	errs := make([]string, 0)
	if rule == nil {
		rule = &entity.PricingRule{}
	}

	if strings.TrimSpace(rule.Name) == "" {
		errs = append(errs, "Rule name is required")
	}
	if rule.DiscountType == "" {
		errs = append(errs, "Discount type is required")
	}
	if rule.DiscountType == entity.DiscountVolume && len(rule.VolumeBrackets) == 0 {
		errs = append(errs, "Volume brackets are required for volume discount rules")
	}
	if rule.ValidFrom != nil && rule.ValidUntil != nil && !rule.ValidFrom.Before(*rule.ValidUntil) {
		errs = append(errs, "Valid from date must be before valid until date")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
