package inventory

import (
	"context"
	"fmt"
	"time"
)

// ExpiryReport datos del reporte de lotes próximos a vencer.
type ExpiryReport struct {
	GeneratedAt time.Time
	WindowDays  int
	Batches     []ExpiringBatch
}

// Expired cantidad de lotes ya vencidos.
func (r ExpiryReport) Expired() int {
	n := 0
	for _, b := range r.Batches {
		if b.DaysToExpiry < 0 {
			n++
		}
	}
	return n
}

// UnitsAtRisk unidades en lotes dentro de la ventana.
func (r ExpiryReport) UnitsAtRisk() int {
	total := 0
	for _, b := range r.Batches {
		total += b.Quantity
	}
	return total
}

// ExpiryReportGenerator puerto de salida para renderizar el reporte (PDF).
type ExpiryReportGenerator interface {
	GenerateExpiryReport(ctx context.Context, report ExpiryReport) ([]byte, error)
}

// ReportUseCase arma y renderiza el reporte de vencimientos.
type ReportUseCase struct {
	batches   *BatchUseCase
	generator ExpiryReportGenerator
	opts      options
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(batches *BatchUseCase, generator ExpiryReportGenerator, opts ...Option) *ReportUseCase {
	return &ReportUseCase{batches: batches, generator: generator, opts: newOptions(opts)}
}

// BuildExpiryReport reúne los lotes que vencen en los próximos days días.
func (uc *ReportUseCase) BuildExpiryReport(ctx context.Context, days int) (ExpiryReport, error) {
	list, err := uc.batches.GetExpiringSoon(ctx, days)
	if err != nil {
		return ExpiryReport{}, err
	}
	return ExpiryReport{GeneratedAt: uc.opts.now(), WindowDays: days, Batches: list}, nil
}

// ExpiryReportPDF devuelve el reporte renderizado.
func (uc *ReportUseCase) ExpiryReportPDF(ctx context.Context, days int) ([]byte, error) {
	report, err := uc.BuildExpiryReport(ctx, days)
	if err != nil {
		return nil, err
	}
	doc, err := uc.generator.GenerateExpiryReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("generar reporte de vencimientos: %w", err)
	}
	uc.opts.log.Info().
		Int("days", days).
		Int("batches", len(report.Batches)).
		Int("bytes", len(doc)).
		Msg("reporte de vencimientos generado")
	return doc, nil
}
