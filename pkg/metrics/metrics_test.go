package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/pkg/metrics"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metricLoop:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metricLoop
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetrics_NilNoRegistraNada(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncPricingEvaluation()
		m.IncDiscountApplied("volume")
		m.IncAllocation(metrics.AllocationOK)
		m.AddStockUnits("STOCK_ADD", 5)
	})

	empty := metrics.New(nil)
	assert.NotPanics(t, func() { empty.IncPricingEvaluation() })
}

func TestMetrics_Contadores(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.IncPricingEvaluation()
	m.IncPricingEvaluation()
	m.IncDiscountApplied(" Volume ")
	m.IncAllocation(metrics.AllocationInsufficient)
	m.AddStockUnits("BATCH_ALLOCATION", -30)
	m.AddStockUnits("", 2)

	assert.Equal(t, 2.0, counterValue(t, reg, "pricing_evaluations_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "pricing_discounts_applied_total", map[string]string{"type": "volume"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "batch_allocations_total", map[string]string{"result": "insufficient_stock"}))
	assert.Equal(t, 30.0, counterValue(t, reg, "stock_units_moved_total", map[string]string{"movement": "batch_allocation"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "stock_units_moved_total", map[string]string{"movement": "unknown"}))
}
