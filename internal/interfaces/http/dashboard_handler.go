package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/radicados-api/internal/application/analytics"
)

// DashboardHandler resumen mensual (protegido).
type DashboardHandler struct {
	uc *analytics.ResumenUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.ResumenUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen mensual de radicados
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        mes  query  string  false  "Mes YYYY-MM (por defecto el actual)"
// @Success      200  {object}  dto.ResumenMensualDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.GetResumen(c.UserContext(), c.Query("mes"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
