package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/inventory"
)

// InventoryHandler ajustes de stock, reposición, libro de movimientos y pedidos.
type InventoryHandler struct {
	batches       *inventory.BatchUseCase
	stock         *inventory.StockUseCase
	replenishment *inventory.ReplenishmentUseCase
	fulfillment   *inventory.FulfillmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	batches *inventory.BatchUseCase,
	stock *inventory.StockUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	fulfillment *inventory.FulfillmentUseCase,
) *InventoryHandler {
	return &InventoryHandler{batches: batches, stock: stock, replenishment: replenishment, fulfillment: fulfillment}
}

// UpdateStock godoc
// @Summary      Ajuste directo de stock
// @Description  Suma o resta sin tocar lotes. Una resta mayor al stock deja el contador en 0.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "ID del producto"
// @Param        body  body      dto.UpdateStockRequest  true  "quantity, operation (add|subtract)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.stock.UpdateStock(c.UserContext(), productID, *in.Quantity, inventory.StockOperation(in.Operation))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// LowStock godoc
// @Summary      Productos en o bajo su nivel de reorden
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.replenishment.GetLowStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(out)
}

// ReorderPoints godoc
// @Summary      Sugerencias de reposición
// @Description  suggestedOrderQuantity = max(2*reorderLevel - currentStock, reorderLevel). Orden de catálogo.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ReorderSuggestionResponse
// @Router       /api/inventory/reorder-points [get]
func (h *InventoryHandler) ReorderPoints(c *fiber.Ctx) error {
	list, err := h.replenishment.CheckReorderPoints(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ReorderSuggestionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toReorderSuggestion(s))
	}
	return c.JSON(out)
}

// ReorderSuggestion godoc
// @Summary      Sugerencia de reposición de un producto
// @Description  Disponible para cualquier producto, esté o no bajo su nivel de reorden.
// @Tags         inventory
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.ReorderSuggestionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reorder-suggestion [get]
func (h *InventoryHandler) ReorderSuggestion(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	s, err := h.replenishment.GetReorderSuggestion(c.UserContext(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toReorderSuggestion(*s))
}

// Movements godoc
// @Summary      Libro de movimientos del producto
// @Tags         inventory
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	list, err := h.batches.ListMovements(c.UserContext(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementResponses(list))
}

// StockConsistency godoc
// @Summary      Stock frente a suma de lotes
// @Tags         inventory
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.StockConsistencyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-consistency [get]
func (h *InventoryHandler) StockConsistency(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	sc, err := h.batches.StockConsistency(c.UserContext(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StockConsistencyResponse{
		ProductID:    sc.ProductID,
		CurrentStock: sc.CurrentStock,
		BatchTotal:   sc.BatchTotal,
		Consistent:   sc.Consistent,
	})
}

// ConfirmOrder godoc
// @Summary      Confirmar pedido
// @Description  Aplica las líneas en orden. Si una falla, las líneas anteriores quedan aplicadas.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ConfirmOrderRequest  true  "Líneas"
// @Success      200   {object}  dto.ConfirmOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/confirm [post]
func (h *InventoryHandler) ConfirmOrder(c *fiber.Ctx) error {
	var in dto.ConfirmOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	lines := make([]inventory.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, inventory.OrderLine{
			ProductID:   l.ProductID.Int(),
			BatchID:     l.BatchID.Int(),
			BatchNumber: l.BatchNumber,
			Quantity:    l.Quantity,
		})
	}
	results, err := h.fulfillment.ConfirmOrder(c.UserContext(), lines)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ConfirmOrderResponse{Lines: toOrderLineResponses(results)})
}
