package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/pkg/logger"
	"github.com/jhoicas/erp-api/pkg/metrics"
)

// TxRunner ejecuta una función como unidad atómica, pasando repositorios atados a ella.
// Garantiza que la verificación y el descuento de cantidades no se intercalen con otra mutación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// Option configura los casos de uso del paquete.
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

// WithClock fija el reloj (tests).
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

// today fecha de calendario (UTC, sin hora).
func today(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
