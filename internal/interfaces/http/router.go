package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/radicados-api/internal/application/alerts"
	"github.com/jhoicas/radicados-api/internal/application/analytics"
	"github.com/jhoicas/radicados-api/internal/application/auth"
	"github.com/jhoicas/radicados-api/internal/application/ports"
	"github.com/jhoicas/radicados-api/internal/application/radicados"
	"github.com/jhoicas/radicados-api/internal/application/usecase"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	RadicadoUC *radicados.RadicadoUseCase
	AlertsUC   *alerts.AlertsUseCase
	ResumenUC  *analytics.ResumenUseCase
	CalendarUC *usecase.CalendarUseCase
	Exporter   ports.RadicadoExporter
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público; alta de funcionarios solo para administradores
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Radicados
	radicadoHandler := NewRadicadoHandler(deps.RadicadoUC, deps.Exporter)
	rad := protected.Group("/radicados")
	rad.Get("/", radicadoHandler.List)
	rad.Post("/", radicadoHandler.Create)
	rad.Get("/export", radicadoHandler.Export)
	rad.Get("/:id", radicadoHandler.GetByID)
	rad.Post("/:id/respondido", radicadoHandler.MarkResponded)
	rad.Post("/:id/respuesta", radicadoHandler.Respond)

	// Alertas
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertas := protected.Group("/alertas")
	alertas.Get("/", alertHandler.List)
	alertas.Post("/sincronizar", alertHandler.Sync)
	alertas.Get("/reporte.pdf", alertHandler.ReportPDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.ResumenUC)
	protected.Get("/dashboard/resumen", dashboardHandler.Resumen)

	// Calendario
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	cal := protected.Group("/calendario")
	cal.Get("/dias-habiles", calendarHandler.BusinessDays)
	cal.Get("/fecha-limite", calendarHandler.Deadline)
	cal.Get("/festivos", calendarHandler.Holidays)
	protected.Post("/festivos", adminOnly, calendarHandler.UpsertHoliday)
}
