package pricing

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-api/pkg/logger"
	"github.com/jhoicas/erp-api/pkg/metrics"
)

// Option configura los casos de uso de precios.
type Option func(*options)

type options struct {
	now     func() time.Time
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock fija el reloj usado para la vigencia de reglas.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger asigna el logger de la aplicación.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l.Zerolog()
		}
	}
}

// WithMetrics asigna los contadores de negocio.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}
