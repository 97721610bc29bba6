package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/radicados-api/internal/application/alerts"
	"github.com/jhoicas/radicados-api/internal/application/analytics"
	"github.com/jhoicas/radicados-api/internal/application/auth"
	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/radicados"
	"github.com/jhoicas/radicados-api/internal/application/usecase"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/infrastructure/export"
	"github.com/jhoicas/radicados-api/internal/infrastructure/memory"
	"github.com/jhoicas/radicados-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/radicados-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/radicados-api/pkg/jwt"
)

const pendienteID = "6f1c2b9e-0000-4000-8000-000000000001"

var bogota, _ = time.LoadLocation("America/Bogota")

type testEnv struct {
	app    *fiber.App
	store  *memory.RadicadoStore
	admin  string
	funcio string
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, bogota)
	return &t
}

// newEnv arma la API completa sobre almacenes en memoria; hoy = lunes 20 de enero de 2025.
func newEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewRadicadoStore(&entity.Radicado{
		ID:                   pendienteID,
		Funcionario:          "Laura Gómez",
		NumeroRadicado:       "2025-ER-0001",
		FechaRadicado:        day(2025, 1, 2),
		FechaLimiteRespuesta: day(2025, 1, 22),
		Tema:                 "Derecho de petición",
		Canal:                "Físico",
		CreatedAt:            time.Date(2025, 1, 2, 9, 0, 0, 0, bogota),
	})
	users := memory.NewUserStore()

	cal := calendar.New(calendar.NewStaticSource(bogota), bogota, zerolog.Nop(),
		calendar.WithClock(func() time.Time { return time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC) }))
	policy := calendar.DefaultPolicy()

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})
	admin, err := authUC.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@alcaldia.gov.co", Password: "secreto123", Name: "Admin", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	funcio, err := authUC.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "laura@alcaldia.gov.co", Password: "secreto123", Name: "Laura Gómez",
	})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     usecase.NewUserUseCase(users),
		RadicadoUC: radicados.NewRadicadoUseCase(store, cal, policy, zerolog.Nop()),
		AlertsUC: alerts.NewAlertsUseCase(store, store, cal, policy,
			pdf.NewAlertReportGenerator("Alcaldía de Prueba", bogota), zerolog.Nop()),
		ResumenUC:  analytics.NewResumenUseCase(store, cal, policy),
		CalendarUC: usecase.NewCalendarUseCase(cal, nil, zerolog.Nop()),
		Exporter:   export.NewExporter(),
		JWTSecret:  testJWTSecret,
	})

	return &testEnv{
		app:    app,
		store:  store,
		admin:  bearer(t, admin.ID, entity.RoleAdmin),
		funcio: bearer(t, funcio.ID, entity.RoleFuncionario),
	}
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, "Test", role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Radicados
// ──────────────────────────────────────────────────────────────────────────────

func TestRadicados_SinTokenRetorna401(t *testing.T) {
	env := newEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/api/radicados", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRadicados_CrearProyectaFechaLimite(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/radicados", env.funcio, map[string]any{
		"funcionario":      "Pedro Ruiz",
		"numero_radicado":  "2025-ER-0100",
		"fecha_asignacion": "2025-01-06",
		"canal":            "Correo Electrónico",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	out := decode[dto.RadicadoResponse](t, body)
	require.NotNil(t, out.FechaLimiteRespuesta)
	assert.Equal(t, "2025-01-28", *out.FechaLimiteRespuesta)
	assert.Equal(t, "Pendiente", out.Estado)
}

func TestRadicados_CrearValidaCanalYFechas(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/radicados", env.funcio, map[string]any{
		"funcionario":      "Pedro Ruiz",
		"numero_radicado":  "2025-ER-0101",
		"fecha_asignacion": "06/01/2025",
		"canal":            "Paloma mensajera",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errResp := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Contains(t, errResp.Message, "canal")
	assert.Contains(t, errResp.Message, "fecha_asignacion")
}

func TestRadicados_NumeroDuplicadoRetorna409(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/radicados", env.funcio, map[string]any{
		"funcionario": "Pedro Ruiz", "numero_radicado": "2025-ER-0001",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, body).Code)
}

func TestRadicados_ListarYFiltrar(t *testing.T) {
	env := newEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/radicados?estado=pendientes&q=petici", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decode[dto.RadicadoListResponse](t, body)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2025-ER-0001", out.Items[0].NumeroRadicado)

	resp, _ = env.do(t, http.MethodGet, "/api/radicados?estado=archivados", env.funcio, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRadicados_DetalleInexistenteRetorna404(t *testing.T) {
	env := newEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/api/radicados/6f1c2b9e-0000-4000-8000-0000000000ff", env.funcio, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRadicados_MarcarRespondido(t *testing.T) {
	env := newEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/radicados/"+pendienteID+"/respondido", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decode[dto.RadicadoResponse](t, body)
	require.NotNil(t, out.DiasRespuesta)
	assert.Equal(t, 11, *out.DiasRespuesta)
	assert.Equal(t, "Respondido", out.Estado)

	resp, body = env.do(t, http.MethodPost, "/api/radicados/"+pendienteID+"/respondido", env.funcio, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_RESPONDED", decode[dto.ErrorResponse](t, body).Code)
}

func TestRadicados_RespuestaParcial(t *testing.T) {
	env := newEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/radicados/"+pendienteID+"/respuesta", env.funcio, map[string]any{
		"tipo":                      "PARCIAL",
		"numero_radicado_respuesta": "2025-EE-0042",
		"fecha_respuesta":           "2025-01-20",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decode[dto.RespondResponse](t, body)
	require.NotNil(t, out.NuevaFechaLimite)
	assert.Equal(t, "2025-02-10", *out.NuevaFechaLimite)
	assert.Equal(t, entity.RespuestaParcialSi, out.Radicado.RespuestaParcial)
}

func TestRadicados_RespuestaTipoInvalido(t *testing.T) {
	env := newEnv(t)
	resp, _ := env.do(t, http.MethodPost, "/api/radicados/"+pendienteID+"/respuesta", env.funcio, map[string]any{
		"tipo": "TOTAL", "numero_radicado_respuesta": "X", "fecha_respuesta": "2025-01-20",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRadicados_ExportarCSV(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/radicados/export?formato=csv", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "radicados.csv")
	assert.Contains(t, string(body), "Número Radicado")
	assert.Contains(t, string(body), "2025-ER-0001")

	resp, _ = env.do(t, http.MethodGet, "/api/radicados/export?formato=pdf", env.funcio, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_TableroYSincronizacion(t *testing.T) {
	env := newEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/alertas?sincronizar=false", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decode[dto.AlertsResponse](t, body)
	assert.Equal(t, dto.AlertStatsDTO{ProximosAVencer: 1, EnAlerta: 1, TotalPendientes: 1}, out.Stats)
	require.Len(t, out.Alertas, 1)
	assert.Equal(t, "2 días hábiles", out.Alertas[0].DiasRestantesTexto)
	assert.False(t, out.Sync.Attempted)

	resp, body = env.do(t, http.MethodPost, "/api/alertas/sincronizar", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decode[dto.AlertsResponse](t, body)
	assert.True(t, out.Sync.OK)
	assert.Equal(t, int64(1), out.Sync.Raised)

	r, _ := env.store.GetByID(context.Background(), pendienteID)
	assert.True(t, r.Alerta)
}

func TestAlertas_ReportePDF(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/alertas/reporte.pdf", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestDashboard_Resumen(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/dashboard/resumen?mes=2025-01", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decode[dto.ResumenMensualDTO](t, body)
	assert.Equal(t, "Enero 2025", out.Mes)
	assert.Equal(t, 1, out.TotalMes)
	assert.Equal(t, 1, out.AlertasMes)
	assert.Zero(t, out.PendientesMes)

	resp, _ = env.do(t, http.MethodGet, "/api/dashboard/resumen?mes=enero", env.funcio, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calendario
// ──────────────────────────────────────────────────────────────────────────────

func TestCalendario_DiasHabilesYFechaLimite(t *testing.T) {
	env := newEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/calendario/dias-habiles?desde=2025-01-05&hasta=2025-01-10", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, decode[dto.BusinessDaysResponse](t, body).DiasHabiles)

	resp, body = env.do(t, http.MethodGet, "/api/calendario/fecha-limite?desde=2025-01-06&dias=16", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025-01-28", decode[dto.DeadlineResponse](t, body).FechaLimite)

	resp, _ = env.do(t, http.MethodGet, "/api/calendario/fecha-limite?desde=2025-01-06", env.funcio, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalendario_Festivos(t *testing.T) {
	env := newEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/calendario/festivos?anio=2025", env.funcio, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.HolidayListResponse](t, body).Festivos, 17)
}

func TestFestivos_AltaSoloAdminYSoloFuenteRemota(t *testing.T) {
	env := newEnv(t)
	in := map[string]any{"fecha": "2025-03-24", "nombre": "Día de San José"}

	resp, _ := env.do(t, http.MethodPost, "/api/festivos", env.funcio, in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := env.do(t, http.MethodPost, "/api/festivos", env.admin, in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, body).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginYPerfil(t *testing.T) {
	env := newEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "laura@alcaldia.gov.co", "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	login := decode[dto.LoginResponse](t, body)
	require.NotEmpty(t, login.Token)

	resp, body = env.do(t, http.MethodGet, "/api/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "laura@alcaldia.gov.co", decode[dto.UserResponse](t, body).Email)

	resp, _ = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "laura@alcaldia.gov.co", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_RegistroSoloAdmin(t *testing.T) {
	env := newEnv(t)
	in := map[string]any{"email": "nuevo@alcaldia.gov.co", "password": "secreto123", "name": "Nuevo"}

	resp, _ := env.do(t, http.MethodPost, "/api/auth/register", env.funcio, in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := env.do(t, http.MethodPost, "/api/auth/register", env.admin, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, entity.RoleFuncionario, decode[dto.UserResponse](t, body).Role)

	resp, _ = env.do(t, http.MethodPost, "/api/auth/register", env.admin, in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
