package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	apppricing "github.com/jhoicas/erp-api/internal/application/pricing"
	"github.com/jhoicas/erp-api/internal/application/usecase"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/erp-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/erp-api/internal/interfaces/http"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
	"github.com/jhoicas/erp-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	seed, err := memory.LoadSeedFile(cfg.Store.FixturesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.FixturesPath).Msg("cargar fixtures")
	}
	store := memory.NewStore(seed, memory.WithLatency(cfg.Store.Latency))
	log.Info().
		Int("products", len(seed.Products)).
		Int("pricing_rules", len(seed.PricingRules)).
		Dur("latency", cfg.Store.Latency).
		Msg("almacén en memoria listo")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	productRepo := memory.NewProductRepository(store)
	ruleRepo := memory.NewPricingRuleRepository(store)
	movementRepo := memory.NewInventoryMovementRepository(store)
	txRunner := memory.NewTxRunner(store)

	invOpts := []inventory.Option{inventory.WithLogger(log), inventory.WithMetrics(m)}
	batchUC := inventory.NewBatchUseCase(txRunner, productRepo, movementRepo, invOpts...)
	stockUC := inventory.NewStockUseCase(txRunner, invOpts...)
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo, invOpts...)
	fulfillmentUC := inventory.NewFulfillmentUseCase(batchUC, stockUC, invOpts...)

	// PDF: reporte de lotes próximos a vencer
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := inventory.NewReportUseCase(batchUC, reportGenerator, invOpts...)

	pricingOpts := []apppricing.Option{apppricing.WithLogger(log), apppricing.WithMetrics(m)}
	pricingUC := apppricing.NewPricingUseCase(ruleRepo, productRepo, pricingOpts...)
	ruleUC := apppricing.NewRuleUseCase(ruleRepo, pricingOpts...)

	productUC := usecase.NewProductUseCase(productRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsPath != "" {
		if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.DocsPath,
				Path:     "docs",
				Title:    "ERP Pricing & Inventory API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		PricingUC:        pricingUC,
		RuleUC:           ruleUC,
		BatchUC:          batchUC,
		StockUC:          stockUC,
		Replenishment:    replenishmentUC,
		Fulfillment:      fulfillmentUC,
		Reports:          reportUC,
		ExpiryWindowDays: cfg.Inventory.ExpiryWindowDays,
		MetricsGatherer:  registry,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
