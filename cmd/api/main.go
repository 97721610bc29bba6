package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/radicados-api/docs"
	"github.com/jhoicas/radicados-api/internal/application/alerts"
	"github.com/jhoicas/radicados-api/internal/application/analytics"
	"github.com/jhoicas/radicados-api/internal/application/auth"
	"github.com/jhoicas/radicados-api/internal/application/radicados"
	"github.com/jhoicas/radicados-api/internal/application/usecase"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/radicados-api/internal/infrastructure/pdf"
	"github.com/jhoicas/radicados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/radicados-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/radicados-api/internal/interfaces/http"
	"github.com/jhoicas/radicados-api/pkg/config"
	"github.com/jhoicas/radicados-api/pkg/logger"
)

// @title        Radicados API
// @version      1.0
// @description  Control de radicados y plazos de respuesta en días hábiles (Colombia).
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("festivos", cfg.Calendar.HolidaySource).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	radicadoRepo := postgres.NewRadicadoRepository(pool, cfg.DB.Schema, cfg.DB.RadicadosTable)
	txRunner := postgres.NewTxRunner(pool, radicadoRepo)

	// Festivos: tabla remota o reglas de la Ley 51 de 1983 calculadas en proceso.
	var (
		holidaySource repository.HolidaySource = calendar.NewStaticSource(loc)
		holidayRepo   repository.HolidayRepository
	)
	if cfg.Calendar.HolidaySource == config.HolidaySourceDatabase {
		repo := postgres.NewHolidayRepository(pool, cfg.DB.Schema, cfg.DB.HolidaysTable, loc)
		holidaySource, holidayRepo = repo, repo
	}
	cal := calendar.New(holidaySource, loc, log.Component("calendar"))

	policy := calendar.Policy{
		ResponseDays:        cfg.Policy.ResponseDays,
		PartialResponseDays: cfg.Policy.PartialResponseDays,
		AlertThreshold:      cfg.Policy.AlertThreshold,
		CriticalDays:        cfg.Policy.CriticalDays,
		WarningDays:         cfg.Policy.WarningDays,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	radicadoUC := radicados.NewRadicadoUseCase(radicadoRepo, cal, policy, log.Component("radicados"))
	alertsUC := alerts.NewAlertsUseCase(radicadoRepo, txRunner, cal, policy,
		infrapdf.NewAlertReportGenerator(cfg.App.Entity, loc), log.Component("alerts"))
	resumenUC := analytics.NewResumenUseCase(radicadoRepo, cal, policy)
	calendarUC := usecase.NewCalendarUseCase(cal, holidayRepo, log.Component("calendar"))

	var alertScheduler *scheduler.AlertScheduler
	if cfg.Scheduler.Enabled {
		alertScheduler = scheduler.NewAlertScheduler(alertsUC, cfg.Scheduler.AlertsCron,
			cfg.Scheduler.SyncTimeout, loc, log.Component("scheduler"))
		if err := alertScheduler.Start(); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Scheduler.AlertsCron).Msg("programar sincronización de alertas")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Radicados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		RadicadoUC: radicadoUC,
		AlertsUC:   alertsUC,
		ResumenUC:  resumenUC,
		CalendarUC: calendarUC,
		Exporter:   export.NewExporter(),
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if alertScheduler != nil {
		alertScheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
