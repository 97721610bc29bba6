package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/usecase"
)

// CalendarHandler calculadora de días hábiles y festivos.
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// BusinessDays godoc
// @Summary      Días hábiles entre dos fechas
// @Description  Cuenta los días hábiles d con desde < d <= hasta.
// @Tags         calendario
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        hasta  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.BusinessDaysResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/calendario/dias-habiles [get]
func (h *CalendarHandler) BusinessDays(c *fiber.Ctx) error {
	out, err := h.uc.CountBusinessDays(c.UserContext(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deadline godoc
// @Summary      Proyectar fecha límite
// @Tags         calendario
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  true  "YYYY-MM-DD"
// @Param        dias   query  int     true  "Días hábiles (1..365)"
// @Success      200  {object}  dto.DeadlineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/calendario/fecha-limite [get]
func (h *CalendarHandler) Deadline(c *fiber.Ctx) error {
	out, err := h.uc.ProjectDeadline(c.UserContext(), c.Query("desde"), c.QueryInt("dias", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Holidays godoc
// @Summary      Festivos de un año
// @Tags         calendario
// @Security     Bearer
// @Produce      json
// @Param        anio  query  int  false  "Año (por defecto el actual)"
// @Success      200  {object}  dto.HolidayListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/calendario/festivos [get]
func (h *CalendarHandler) Holidays(c *fiber.Ctx) error {
	out, err := h.uc.Holidays(c.UserContext(), c.QueryInt("anio", time.Now().Year()))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpsertHoliday godoc
// @Summary      Registrar festivo
// @Description  Solo con la fuente de festivos en base de datos.
// @Tags         calendario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertHolidayRequest  true  "fecha, nombre"
// @Success      201   {object}  dto.HolidayDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/festivos [post]
func (h *CalendarHandler) UpsertHoliday(c *fiber.Ctx) error {
	var in dto.UpsertHolidayRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.UpsertHoliday(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
