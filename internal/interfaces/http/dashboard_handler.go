package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/papeleria-pos/internal/application/reports"
)

// DashboardHandler expone el resumen del dashboard.
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Ventas de hoy y ayer, más vendidos del mes y stock bajo.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
