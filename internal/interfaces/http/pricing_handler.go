package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
	apppricing "github.com/jhoicas/erp-api/internal/application/pricing"
)

// PricingHandler cotizaciones y tramos de volumen.
type PricingHandler struct {
	uc *apppricing.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *apppricing.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular precio óptimo
// @Description  Aplica descuentos de volumen, de cliente y promocionales (en ese orden) sobre basePrice.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculatePriceRequest  true  "productId, customerId, quantity, basePrice"
// @Success      200   {object}  dto.PricingResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/calculate [post]
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculatePriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.CalculateOptimalPrice(c.UserContext(), in.ProductID.Int(), in.CustomerID.Int(), in.Quantity, *in.BasePrice)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPricingResultResponse(res))
}

// ProductPrice godoc
// @Summary      Cotizar producto con su precio retail
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "ID del producto"
// @Param        body  body      dto.ProductPriceRequest  true  "customerId, quantity"
// @Success      200   {object}  dto.PricingResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price [post]
func (h *PricingHandler) ProductPrice(c *fiber.Ctx) error {
	id, ok, err := intParam(c, "id")
	if !ok {
		return err
	}
	var in dto.ProductPriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.CalculateProductPrice(c.UserContext(), id, in.CustomerID.Int(), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPricingResultResponse(res))
}

// Breakpoints godoc
// @Summary      Tramos de descuento por volumen
// @Tags         pricing
// @Produce      json
// @Param        productId   query     int  true   "ID del producto"
// @Param        customerId  query     int  false  "ID del cliente"
// @Success      200         {array}   dto.BreakpointResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/pricing/breakpoints [get]
func (h *PricingHandler) Breakpoints(c *fiber.Ctx) error {
	if c.Query("productId") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId is required"})
	}
	productID, ok, err := queryInt(c, "productId", 0)
	if !ok {
		return err
	}
	customerID, ok, err := queryInt(c, "customerId", 0)
	if !ok {
		return err
	}
	list, err := h.uc.GetVolumeBreakpoints(c.UserContext(), productID, customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBreakpointResponses(list))
}

// ValidateRule godoc
// @Summary      Validar una regla de precios sin guardarla
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PricingRuleRequest  true  "Regla"
// @Description  Tipos o fechas inválidos se informan en errors con isValid=false. Solo un JSON mal formado da 400.
// @Success      200   {object}  dto.ValidationResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/rules/validate [post]
func (h *PricingHandler) ValidateRule(c *fiber.Ctx) error {
	var in dto.PricingRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "invalid request body",
			Details: []string{err.Error()},
		})
	}
	var fieldErrs []string
	if err := validate.Struct(&in); err != nil {
		fieldErrs = validationDetails(err)
	}
	rule, err := toRuleEntity(in)
	if err != nil {
		// Fechas ilegibles: el resto de la regla se revisa sin vigencia.
		if len(fieldErrs) == 0 {
			fieldErrs = append(fieldErrs, err.Error())
		}
		in.ValidFrom, in.ValidUntil = "", ""
		if rule, err = toRuleEntity(in); err != nil {
			return writeError(c, err)
		}
	}
	res := h.uc.ValidatePricingRule(rule)
	errs := append(res.Errors, fieldErrs...)
	return c.JSON(dto.ValidationResultResponse{IsValid: len(errs) == 0, Errors: errs})
}
