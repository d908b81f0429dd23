package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/inventory"
)

// BatchHandler lotes por producto y consultas transversales de lotes.
type BatchHandler struct {
	uc                *inventory.BatchUseCase
	defaultExpiryDays int
}

// NewBatchHandler construye el handler. defaultExpiryDays es la ventana usada si no llega ?days.
func NewBatchHandler(uc *inventory.BatchUseCase, defaultExpiryDays int) *BatchHandler {
	return &BatchHandler{uc: uc, defaultExpiryDays: defaultExpiryDays}
}

// List godoc
// @Summary      Lotes de un producto
// @Tags         batches
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {array}   dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	batches, err := h.uc.GetBatches(c.UserContext(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBatchResponses(batches))
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         batches
// @Produce      json
// @Param        id       path      int  true  "ID del producto"
// @Param        batchId  path      int  true  "ID del lote"
// @Success      200      {object}  dto.BatchResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches/{batchId} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	batchID, ok, err := intParam(c, "batchId")
	if !ok {
		return err
	}
	b, err := h.uc.GetBatchByID(c.UserContext(), productID, batchID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBatchResponse(*b))
}

// Create godoc
// @Summary      Registrar lote
// @Description  Agrega el lote al producto y suma su cantidad al stock.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "ID del producto"
// @Param        body  body      dto.CreateBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	var in dto.CreateBatchRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	input, err := toCreateBatchInput(in)
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.uc.CreateBatch(c.UserContext(), productID, input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(*b))
}

// Update godoc
// @Summary      Editar lote
// @Description  Un cambio de quantity ajusta el stock del producto por la diferencia. qualityCheckStatus solo avanza desde pending.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "ID del producto"
// @Param        batchId  path      int                     true  "ID del lote"
// @Param        body     body      dto.UpdateBatchRequest  true  "Campos a cambiar"
// @Success      200      {object}  dto.BatchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches/{batchId} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	batchID, ok, err := intParam(c, "batchId")
	if !ok {
		return err
	}
	var in dto.UpdateBatchRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	input, err := toUpdateBatchInput(in)
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.uc.UpdateBatch(c.UserContext(), productID, batchID, input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBatchResponse(*b))
}

// Allocate godoc
// @Summary      Asignar cantidad de un lote
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "ID del producto"
// @Param        batchId  path      int                       true  "ID del lote"
// @Param        body     body      dto.AllocateBatchRequest  true  "quantity"
// @Success      200      {object}  dto.AllocationResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches/{batchId}/allocate [post]
func (h *BatchHandler) Allocate(c *fiber.Ctx) error {
	productID, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	batchID, ok, err := intParam(c, "batchId")
	if !ok {
		return err
	}
	var in dto.AllocateBatchRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	a, err := h.uc.AllocateBatch(c.UserContext(), productID, batchID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toAllocationResponse(a))
}

// Search godoc
// @Summary      Lotes de todos los productos
// @Tags         batches
// @Produce      json
// @Param        q    query     string  false  "Texto en número de lote, producto o proveedor"
// @Success      200  {array}   dto.BatchWithProductResponse
// @Router       /api/batches [get]
func (h *BatchHandler) Search(c *fiber.Ctx) error {
	views, err := h.uc.SearchBatches(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBatchViews(views))
}

// Expiring godoc
// @Summary      Lotes próximos a vencer
// @Description  Incluye los ya vencidos (daysToExpiry negativo). Ordenados del más urgente al menos urgente.
// @Tags         batches
// @Produce      json
// @Param        days  query     int  false  "Ventana en días (por defecto la configurada)"
// @Success      200   {array}   dto.ExpiringBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/batches/expiring [get]
func (h *BatchHandler) Expiring(c *fiber.Ctx) error {
	days, ok, err := queryInt(c, "days", h.defaultExpiryDays)
	if !ok {
		return err
	}
	list, err := h.uc.GetExpiringSoon(c.UserContext(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toExpiringBatches(list))
}
