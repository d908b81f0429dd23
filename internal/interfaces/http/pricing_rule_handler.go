package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
	apppricing "github.com/jhoicas/erp-api/internal/application/pricing"
	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// PricingRuleHandler CRUD de reglas de precios.
type PricingRuleHandler struct {
	uc *apppricing.RuleUseCase
}

// NewPricingRuleHandler construye el handler.
func NewPricingRuleHandler(uc *apppricing.RuleUseCase) *PricingRuleHandler {
	return &PricingRuleHandler{uc: uc}
}

// List godoc
// @Summary      Listar reglas de precios
// @Description  Con productId devuelve las reglas que listan el producto o son globales; con customerId, las que listan al cliente o son globales.
// @Tags         pricing-rules
// @Produce      json
// @Param        productId   query     int  false  "Filtrar por producto"
// @Param        customerId  query     int  false  "Filtrar por cliente"
// @Success      200         {array}   dto.PricingRuleResponse
// @Router       /api/pricing/rules [get]
func (h *PricingRuleHandler) List(c *fiber.Ctx) error {
	var (
		rules []*entity.PricingRule
		err   error
	)
	switch {
	case c.Query("productId") != "":
		id, ok, qerr := queryInt(c, "productId", 0)
		if !ok {
			return qerr
		}
		rules, err = h.uc.GetByProduct(c.UserContext(), id)
	case c.Query("customerId") != "":
		id, ok, qerr := queryInt(c, "customerId", 0)
		if !ok {
			return qerr
		}
		rules, err = h.uc.GetByCustomer(c.UserContext(), id)
	default:
		rules, err = h.uc.List(c.UserContext())
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRuleResponses(rules))
}

// Active godoc
// @Summary      Reglas activas y vigentes
// @Tags         pricing-rules
// @Produce      json
// @Success      200  {array}  dto.PricingRuleResponse
// @Router       /api/pricing/rules/active [get]
func (h *PricingRuleHandler) Active(c *fiber.Ctx) error {
	rules, err := h.uc.GetActiveRules(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRuleResponses(rules))
}

// GetByID godoc
// @Summary      Obtener regla por ID
// @Tags         pricing-rules
// @Produce      json
// @Param        id   path      int  true  "ID de la regla"
// @Success      200  {object}  dto.PricingRuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pricing/rules/{id} [get]
func (h *PricingRuleHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	rule, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRuleResponse(rule))
}

// Create godoc
// @Summary      Crear regla de precios
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PricingRuleRequest  true  "Regla"
// @Success      201   {object}  dto.PricingRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/rules [post]
func (h *PricingRuleHandler) Create(c *fiber.Ctx) error {
	var in dto.PricingRuleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	rule, err := toRuleEntity(in)
	if err != nil {
		return writeError(c, err)
	}
	created, err := h.uc.Create(c.UserContext(), rule)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRuleResponse(created))
}

// Update godoc
// @Summary      Reemplazar regla de precios
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "ID de la regla"
// @Param        body  body      dto.PricingRuleRequest  true  "Regla"
// @Success      200   {object}  dto.PricingRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pricing/rules/{id} [put]
func (h *PricingRuleHandler) Update(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	var in dto.PricingRuleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	rule, err := toRuleEntity(in)
	if err != nil {
		return writeError(c, err)
	}
	updated, err := h.uc.Update(c.UserContext(), id, rule)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRuleResponse(updated))
}

// Delete godoc
// @Summary      Eliminar regla de precios
// @Tags         pricing-rules
// @Param        id   path  int  true  "ID de la regla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pricing/rules/{id} [delete]
func (h *PricingRuleHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
