package dto

import "github.com/shopspring/decimal"

// PricingTierDTO precio por unidad de un nivel comercial.
type PricingTierDTO struct {
	Tier         string          `json:"tier"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// UpdatePricingTierRequest body para PUT /api/products/:id/pricing/:tier.
type UpdatePricingTierRequest struct {
	PricePerUnit *decimal.Decimal `json:"pricePerUnit" validate:"required"`
}

// ProductResponse salida de un producto con sus lotes.
type ProductResponse struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Brand        string           `json:"brand"`
	BaseUOM      string           `json:"baseUOM"`
	CurrentStock int              `json:"currentStock"`
	ReorderLevel int              `json:"reorderLevel"`
	Status       string           `json:"status"`
	Pricing      []PricingTierDTO `json:"pricing"`
	Batches      []BatchResponse  `json:"batches"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductPriceRequest body para POST /api/products/:id/price (precio base = nivel retail).
type ProductPriceRequest struct {
	CustomerID FlexibleID `json:"customerId"`
	Quantity   int        `json:"quantity" validate:"required,min=1"`
}
