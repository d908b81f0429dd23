package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RuleType alcance comercial de la regla.
type RuleType string

const (
	RuleTypeGlobal           RuleType = "global"
	RuleTypeCustomerTier     RuleType = "customer_tier"
	RuleTypeCustomerSpecific RuleType = "customer_specific"
	RuleTypePromotional      RuleType = "promotional"
	RuleTypeSeasonal         RuleType = "seasonal"
)

// DiscountType decide en qué etapa del cálculo se aplica la regla.
type DiscountType string

const (
	DiscountVolume           DiscountType = "volume"
	DiscountCustomerSpecific DiscountType = "customer_specific"
	DiscountPromotional      DiscountType = "promotional"
)

// ValueType forma de expresar un descuento.
type ValueType string

const (
	ValuePercentage ValueType = "percentage"
	ValueFixed      ValueType = "fixed"
)

// VolumeBracket rango de cantidades con su descuento. MaxQuantity nil = sin tope.
type VolumeBracket struct {
	MinQuantity   int
	MaxQuantity   *int
	DiscountValue decimal.Decimal
	DiscountType  ValueType
}

// Matches indica si la cantidad cae dentro del rango.
func (b VolumeBracket) Matches(quantity int) bool {
	if quantity < b.MinQuantity {
		return false
	}
	return b.MaxQuantity == nil || quantity <= *b.MaxQuantity
}

// Discount descuento único de reglas customer_specific y promotional.
type Discount struct {
	Type  ValueType
	Value decimal.Decimal
}

// PricingRule regla de precios. Priority se conserva pero no ordena la aplicación:
// el orden lo fija DiscountType (volume -> customer_specific -> promotional).
type PricingRule struct {
	ID                  int
	Name                string
	Description         string
	RuleType            RuleType
	DiscountType        DiscountType
	IsActive            bool
	Priority            int
	ApplicableProducts  []int
	ApplicableCustomers []int
	CustomerTiers       []string
	ValidFrom           *time.Time
	ValidUntil          *time.Time
	VolumeBrackets      []VolumeBracket
	DiscountValue       *Discount
	MinQuantity         int
	CreatedDate         time.Time
	LastModified        time.Time
}

// IsActiveAt: activa, y now dentro de la ventana [ValidFrom, ValidUntil] si están definidas.
func (r *PricingRule) IsActiveAt(now time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.ValidFrom != nil && r.ValidFrom.After(now) {
		return false
	}
	if r.ValidUntil != nil && r.ValidUntil.Before(now) {
		return false
	}
	return true
}

// AppliesToProduct: el producto está listado o la regla es global.
func (r *PricingRule) AppliesToProduct(productID int) bool {
	return r.RuleType == RuleTypeGlobal || slices.Contains(r.ApplicableProducts, productID)
}

// AppliesToCustomer: el cliente está listado, la regla es global o la regla no
// restringe niveles de cliente. Una regla sin CustomerTiers aplica a todos los
// clientes aunque liste ApplicableCustomers.
func (r *PricingRule) AppliesToCustomer(customerID int) bool {
	return r.RuleType == RuleTypeGlobal ||
		len(r.CustomerTiers) == 0 ||
		slices.Contains(r.ApplicableCustomers, customerID)
}

// AppliesToCustomerList es el filtro estricto por lista de clientes (sin el
// comodín de CustomerTiers vacío), usado por el listado de reglas por cliente.
func (r *PricingRule) AppliesToCustomerList(customerID int) bool {
	return r.RuleType == RuleTypeGlobal || slices.Contains(r.ApplicableCustomers, customerID)
}

// Clone copia profunda.
func (r *PricingRule) Clone() *PricingRule {
	if r == nil {
		return nil
	}
	c := *r
	c.ApplicableProducts = slices.Clone(r.ApplicableProducts)
	c.ApplicableCustomers = slices.Clone(r.ApplicableCustomers)
	c.CustomerTiers = slices.Clone(r.CustomerTiers)
	c.VolumeBrackets = slices.Clone(r.VolumeBrackets)
	if r.DiscountValue != nil {
		d := *r.DiscountValue
		c.DiscountValue = &d
	}
	return &c
}
