package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/inventory"
)

// ReportHandler reportes descargables.
type ReportHandler struct {
	uc                *inventory.ReportUseCase
	defaultExpiryDays int
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.ReportUseCase, defaultExpiryDays int) *ReportHandler {
	return &ReportHandler{uc: uc, defaultExpiryDays: defaultExpiryDays}
}

// ExpiryReport godoc
// @Summary      Reporte PDF de lotes próximos a vencer
// @Tags         batches
// @Produce      application/pdf
// @Param        days  query     int  false  "Ventana en días (por defecto la configurada)"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/batches/expiring/report.pdf [get]
func (h *ReportHandler) ExpiryReport(c *fiber.Ctx) error {
	days, ok, err := queryInt(c, "days", h.defaultExpiryDays)
	if !ok {
		return err
	}
	doc, err := h.uc.ExpiryReportPDF(c.UserContext(), days)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="lotes-por-vencer-%dd.pdf"`, days))
	return c.Send(doc)
}
