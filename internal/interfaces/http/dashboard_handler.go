package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/application/usecase"
)

// DashboardHandler maneja los endpoints de Dashboard y Reportes.
type DashboardHandler struct {
	uc  *usecase.StatsUseCase
	pdf ports.ReportPDFGenerator
}

// NewDashboardHandler construye el handler. pdf puede ser nil si no se exporta.
func NewDashboardHandler(uc *usecase.StatsUseCase, pdf ports.ReportPDFGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, pdf: pdf}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[dto.DashboardStats]
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, *stats, "Stats retrieved successfully")
}

// GetSummary godoc
// @Summary      Resumen de reportes
// @Description  Stock bajo, ventas por día, medio de pago, producto y categoría, y compras pendientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[dto.DashboardSummaryDTO]
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, *summary, "Summary retrieved successfully")
}

// ExportPDF godoc
// @Summary      Exportar resumen de reportes en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/reports/summary.pdf [get]
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "PDF_DISABLED", Message: "exportación PDF no configurada"})
	}
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	username, _ := c.Locals(LocalUsername).(string)
	out, err := h.pdf.GenerateReportPDF(c.UserContext(), summary, dto.ReportMeta{
		Title:       "Reporte del panel",
		GeneratedBy: username,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(out)
}

// GetReplenishment godoc
// @Summary      Lista de reposición
// @Description  Productos en Bajo o Crítico con cantidad sugerida, costo estimado y prioridad.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[[]dto.ReplenishmentSuggestionDTO]
// @Router       /api/inventory/replenishment [get]
func (h *DashboardHandler) GetReplenishment(c *fiber.Ctx) error {
	list, err := h.uc.GetReplenishment(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, list, "Replenishment list retrieved successfully")
}
