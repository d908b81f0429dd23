package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	apppricing "github.com/jhoicas/erp-api/internal/application/pricing"
	"github.com/jhoicas/erp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	PricingUC        *apppricing.PricingUseCase
	RuleUC           *apppricing.RuleUseCase
	BatchUC          *inventory.BatchUseCase
	StockUC          *inventory.StockUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	Fulfillment      *inventory.FulfillmentUseCase
	Reports          *inventory.ReportUseCase
	ExpiryWindowDays int
	MetricsGatherer  prometheus.Gatherer // nil = sin /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.MetricsGatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	productHandler := NewProductHandler(deps.ProductUC)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	ruleHandler := NewPricingRuleHandler(deps.RuleUC)
	batchHandler := NewBatchHandler(deps.BatchUC, deps.ExpiryWindowDays)
	inventoryHandler := NewInventoryHandler(deps.BatchUC, deps.StockUC, deps.Replenishment, deps.Fulfillment)
	reportHandler := NewReportHandler(deps.Reports, deps.ExpiryWindowDays)

	// Products (las rutas fijas van antes de /:id)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/low-stock", inventoryHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/pricing", productHandler.GetPricingTiers)
	products.Put("/:id/pricing/:tier", productHandler.UpdatePricingTier)
	products.Post("/:id/price", pricingHandler.ProductPrice)
	products.Post("/:id/stock", inventoryHandler.UpdateStock)
	products.Get("/:id/reorder-suggestion", inventoryHandler.ReorderSuggestion)
	products.Get("/:id/movements", inventoryHandler.Movements)
	products.Get("/:id/stock-consistency", inventoryHandler.StockConsistency)

	// Batches por producto
	products.Get("/:id/batches", batchHandler.List)
	products.Post("/:id/batches", batchHandler.Create)
	products.Get("/:id/batches/:batchId", batchHandler.GetByID)
	products.Put("/:id/batches/:batchId", batchHandler.Update)
	products.Post("/:id/batches/:batchId/allocate", batchHandler.Allocate)

	// Batches de todos los productos
	batches := api.Group("/batches")
	batches.Get("/", batchHandler.Search)
	batches.Get("/expiring", batchHandler.Expiring)
	batches.Get("/expiring/report.pdf", reportHandler.ExpiryReport)

	// Inventory
	invGroup := api.Group("/inventory")
	invGroup.Get("/reorder-points", inventoryHandler.ReorderPoints)

	// Orders
	api.Post("/orders/confirm", inventoryHandler.ConfirmOrder)

	// Pricing
	pricingGroup := api.Group("/pricing")
	pricingGroup.Post("/calculate", pricingHandler.Calculate)
	pricingGroup.Get("/breakpoints", pricingHandler.Breakpoints)
	pricingGroup.Post("/rules/validate", pricingHandler.ValidateRule)
	pricingGroup.Get("/rules/active", ruleHandler.Active)
	pricingGroup.Get("/rules", ruleHandler.List)
	pricingGroup.Post("/rules", ruleHandler.Create)
	pricingGroup.Get("/rules/:id", ruleHandler.GetByID)
	pricingGroup.Put("/rules/:id", ruleHandler.Update)
	pricingGroup.Delete("/rules/:id", ruleHandler.Delete)
}
