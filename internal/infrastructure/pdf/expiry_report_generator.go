// Package pdf genera el reporte de lotes próximos a vencer con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + ventana        │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: lotes / vencidos / unidades en riesgo             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Lote | Producto | Vence | Días | Cant. | Ubic. | QC │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.ExpiryReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.ExpiryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador. appName va como autor del documento.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: appName}
}

// GenerateExpiryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExpiryReport(ctx context.Context, report inventory.ExpiryReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lotes próximos a vencer", true).
		WithAuthor(nonEmpty(g.title, "erp-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Batches) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin lotes dentro de la ventana.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Batches) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report inventory.ExpiryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LOTES PRÓXIMOS A VENCER", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ventana: %d días", report.WindowDays), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report inventory.ExpiryReport) core.Row {
	stat := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Color: c}),
		)
	}
	return row.New(14).Add(
		stat("LOTES", strconv.Itoa(len(report.Batches)), nil),
		stat("VENCIDOS", strconv.Itoa(report.Expired()), colorDanger),
		stat("UNIDADES EN RIESGO", strconv.Itoa(report.UnitsAtRisk()), nil),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Lote", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Vence", 2, align.Center),
		h("Días", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Ubicación", 2, align.Left),
		h("QC", 1, align.Center),
	)
}

func tableDetailRows(batches []inventory.ExpiringBatch) []core.Row {
	result := make([]core.Row, 0, len(batches))
	for _, b := range batches {
		days := props.Text{Size: 8, Align: align.Center, Top: 1}
		if b.DaysToExpiry < 0 {
			days.Color = colorDanger
			days.Style = fontstyle.Bold
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(b.BatchNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(b.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(b.ExpiryDate.Format(entity.DateLayout), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(b.DaysToExpiry), days)),
			col.New(1).Add(text.New(strconv.Itoa(b.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(nonEmpty(b.StorageLocation, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(string(b.QualityCheckStatus), props.Text{Size: 7, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Días negativos indican lotes ya vencidos. Las cantidades corresponden al saldo actual de cada lote.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
