// expiry_report genera el reporte PDF de lotes próximos a vencer a partir de los
// fixtures (embebidos o FIXTURES_PATH), sin levantar el servidor HTTP.
//
// Uso: go run ./cmd/expiry_report [salida.pdf] [días]
// Por defecto escribe lotes-por-vencer.pdf con la ventana EXPIRY_WINDOW_DAYS.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/erp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	outPath := "lotes-por-vencer.pdf"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}
	days := cfg.Inventory.ExpiryWindowDays
	if len(os.Args) > 2 {
		days, err = strconv.Atoi(os.Args[2])
		if err != nil || days < 0 {
			fmt.Fprintf(os.Stderr, "Días inválidos: %q\n", os.Args[2])
			os.Exit(1)
		}
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "expiry_report", Output: os.Stderr})

	seed, err := memory.LoadSeedFile(cfg.Store.FixturesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar fixtures: %v\n", err)
		os.Exit(1)
	}
	store := memory.NewStore(seed)

	batchUC := inventory.NewBatchUseCase(
		memory.NewTxRunner(store),
		memory.NewProductRepository(store),
		memory.NewInventoryMovementRepository(store),
		inventory.WithLogger(log),
	)
	reportUC := inventory.NewReportUseCase(batchUC, infrapdf.NewMarotoReportGenerator(cfg.App.Name), inventory.WithLogger(log))

	ctx := context.Background()
	report, err := reportUC.BuildExpiryReport(ctx, days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Armar reporte: %v\n", err)
		os.Exit(1)
	}
	doc, err := reportUC.ExpiryReportPDF(ctx, days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar PDF: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Escrito %s: %d lotes en %d días (%d vencidos, %d unidades)\n",
		outPath, len(report.Batches), days, report.Expired(), report.UnitsAtRisk())
}
