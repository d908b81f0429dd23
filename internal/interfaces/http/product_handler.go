package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	p, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// GetPricingTiers godoc
// @Summary      Niveles de precio del producto
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {array}   dto.PricingTierDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/pricing [get]
func (h *ProductHandler) GetPricingTiers(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	tiers, err := h.uc.GetPricingTiers(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPricingTiers(tiers))
}

// UpdatePricingTier godoc
// @Summary      Crear o reemplazar un nivel de precio
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID del producto"
// @Param        tier  path  string                        true  "Nivel (retail, wholesale, ...)"
// @Param        body  body  dto.UpdatePricingTierRequest  true  "pricePerUnit"
// @Success      200   {array}   dto.PricingTierDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/pricing/{tier} [put]
func (h *ProductHandler) UpdatePricingTier(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdatePricingTierRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	tiers, err := h.uc.UpdatePricingTier(c.UserContext(), id, c.Params("tier"), *in.PricePerUnit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPricingTiers(tiers))
}
