package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/ports"
	"github.com/jhoicas/radicados-api/internal/application/radicados"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
)

// RadicadoHandler radicación, consulta, respuesta y exportación de radicados (protegido).
type RadicadoHandler struct {
	uc       *radicados.RadicadoUseCase
	exporter ports.RadicadoExporter
}

// NewRadicadoHandler construye el handler.
func NewRadicadoHandler(uc *radicados.RadicadoUseCase, exporter ports.RadicadoExporter) *RadicadoHandler {
	return &RadicadoHandler{uc: uc, exporter: exporter}
}

// Create godoc
// @Summary      Radicar documento
// @Description  Con fecha_asignacion se proyecta la fecha límite a 16 días hábiles.
// @Tags         radicados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRadicadoRequest  true  "Datos del radicado"
// @Success      201   {object}  dto.RadicadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/radicados [post]
func (h *RadicadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRadicadoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar radicados
// @Tags         radicados
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por número, funcionario, tema o remitente"
// @Param        estado  query  string  false  "todos | pendientes | respondidos | alertas"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.RadicadoListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/radicados [get]
func (h *RadicadoHandler) List(c *fiber.Ctx) error {
	var in dto.RadicadoListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	in.DefaultPage()
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un radicado
// @Tags         radicados
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del radicado"
// @Success      200  {object}  dto.RadicadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/radicados/{id} [get]
func (h *RadicadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkResponded godoc
// @Summary      Marcar como respondido hoy
// @Description  Calcula dias_respuesta desde la fecha de radicación y limpia la alerta.
// @Tags         radicados
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del radicado"
// @Success      200  {object}  dto.RadicadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/radicados/{id}/respondido [post]
func (h *RadicadoHandler) MarkResponded(c *fiber.Ctx) error {
	out, err := h.uc.MarkResponded(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Respond godoc
// @Summary      Registrar respuesta
// @Description  COMPLETA cierra el radicado; PARCIAL fija un nuevo plazo de 15 días hábiles.
// @Tags         radicados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del radicado"
// @Param        body  body  dto.RespondRequest  true  "Datos de la respuesta"
// @Success      200   {object}  dto.RespondResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/radicados/{id}/respuesta [post]
func (h *RadicadoHandler) Respond(c *fiber.Ctx) error {
	var in dto.RespondRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Respond(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar radicados
// @Tags         radicados
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/vnd.ms-excel
// @Param        formato  query  string  false  "csv | xls"  default(csv)
// @Param        q        query  string  false  "Búsqueda"
// @Param        estado   query  string  false  "todos | pendientes | respondidos | alertas"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/radicados/export [get]
func (h *RadicadoHandler) Export(c *fiber.Ctx) error {
	format := c.Query("formato", ports.FormatCSV)
	if format != ports.FormatCSV && format != ports.FormatXLS {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato debe ser csv o xls"})
	}
	estado := c.Query("estado", entity.EstadoTodos)
	items, err := h.uc.ListAll(c.UserContext(), c.Query("q"), estado)
	if err != nil {
		return writeError(c, err)
	}
	body, err := h.exporter.Export(c.UserContext(), format, items)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, h.exporter.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="radicados.`+format+`"`)
	return c.Send(body)
}
