package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/radicados-api/internal/application/alerts"
)

// AlertHandler tablero de alertas por vencimiento (protegido).
type AlertHandler struct {
	uc *alerts.AlertsUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertsUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Tablero de alertas
// @Description  Clasifica los pendientes por días hábiles restantes y, salvo sincronizar=false, actualiza la bandera alerta.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        sincronizar  query  bool  false  "Escribir la bandera alerta"  default(true)
// @Success      200  {object}  dto.AlertsResponse
// @Router       /api/alertas [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext(), c.QueryBool("sincronizar", true))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sync godoc
// @Summary      Sincronizar alertas
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Router       /api/alertas/sincronizar [post]
func (h *AlertHandler) Sync(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext(), true)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF de alertas
// @Tags         alertas
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/alertas/reporte.pdf [get]
func (h *AlertHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="alertas.pdf"`)
	return c.Send(pdf)
}
