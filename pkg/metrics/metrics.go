package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados de una asignación de lote.
const (
	AllocationOK           = "ok"
	AllocationInsufficient = "insufficient_stock"
	AllocationNotFound     = "not_found"
	AllocationError        = "error"
)

// Metrics contadores de negocio del motor de precios y del inventario por lotes.
// Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	pricingEvaluations prometheus.Counter
	discountsApplied   *prometheus.CounterVec
	allocations        *prometheus.CounterVec
	stockUnits         *prometheus.CounterVec
}

// New registra las métricas en el registerer dado.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	evaluations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_evaluations_total",
		Help: "Pricing evaluations performed.",
	})
	discounts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_discounts_applied_total",
		Help: "Discounts applied by discount type.",
	}, []string{"type"})
	allocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "batch_allocations_total",
		Help: "Batch allocation attempts by result.",
	}, []string{"result"})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_units_moved_total",
		Help: "Absolute stock units moved by movement type.",
	}, []string{"movement"})
	reg.MustRegister(evaluations, discounts, allocations, units)
	return &Metrics{
		pricingEvaluations: evaluations,
		discountsApplied:   discounts,
		allocations:        allocations,
		stockUnits:         units,
	}
}

// IncPricingEvaluation cuenta una evaluación de precio.
func (m *Metrics) IncPricingEvaluation() {
	if m == nil || m.pricingEvaluations == nil {
		return
	}
	m.pricingEvaluations.Inc()
}

// IncDiscountApplied cuenta un descuento aplicado del tipo dado.
func (m *Metrics) IncDiscountApplied(discountType string) {
	if m == nil || m.discountsApplied == nil {
		return
	}
	m.discountsApplied.WithLabelValues(normalizeLabel(discountType)).Inc()
}

// IncAllocation cuenta un intento de asignación con su resultado.
func (m *Metrics) IncAllocation(result string) {
	if m == nil || m.allocations == nil {
		return
	}
	m.allocations.WithLabelValues(normalizeLabel(result)).Inc()
}

// AddStockUnits suma unidades movidas (valor absoluto) para el tipo de movimiento.
func (m *Metrics) AddStockUnits(movement string, units int) {
	if m == nil || m.stockUnits == nil {
		return
	}
	if units < 0 {
		units = -units
	}
	m.stockUnits.WithLabelValues(normalizeLabel(movement)).Add(float64(units))
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
