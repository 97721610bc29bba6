package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/radicados-api/internal/application/analytics"
	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/infrastructure/memory"
)

var bogota, _ = time.LoadLocation("America/Bogota")

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, bogota)
	return &t
}

func intPtr(n int) *int { return &n }

func buildResumen() *analytics.ResumenUseCase {
	store := memory.NewRadicadoStore(
		&entity.Radicado{ID: "1", NumeroRadicado: "R-1", FechaRadicado: day(2025, 1, 2), Canal: "correo electronico",
			FechaRadicadoRespuesta: day(2025, 1, 15), DiasRespuesta: intPtr(8)},
		&entity.Radicado{ID: "2", NumeroRadicado: "R-2", FechaRadicado: day(2025, 1, 6), FechaAsignacion: day(2025, 1, 6), Canal: "Email"},
		&entity.Radicado{ID: "3", NumeroRadicado: "R-3", FechaRadicado: day(2025, 1, 15), FechaLimiteRespuesta: day(2025, 3, 3),
			Canal: "Ventanilla Única", Alerta: true},
		&entity.Radicado{ID: "4", NumeroRadicado: "R-4", FechaRadicado: day(2024, 12, 10)},
		&entity.Radicado{ID: "5", NumeroRadicado: "R-5", FechaRadicado: day(2025, 2, 1), Canal: "Fax",
			FechaRadicadoRespuesta: day(2025, 2, 3), DiasRespuesta: intPtr(1)},
	)
	cal := calendar.New(calendar.NewStaticSource(bogota), bogota, zerolog.Nop(),
		calendar.WithClock(func() time.Time { return time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC) }))
	return analytics.NewResumenUseCase(store, cal, calendar.DefaultPolicy())
}

func TestGetResumen_MesEnCurso(t *testing.T) {
	res, err := buildResumen().GetResumen(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Enero 2025", res.Mes)
	assert.Equal(t, "2025-01-01", res.Desde)
	assert.Equal(t, "2025-01-31", res.Hasta)
	assert.Equal(t, 3, res.TotalMes)
	assert.Equal(t, 1, res.RespondidosMes)
	assert.Equal(t, 1, res.PendientesMes)
	assert.Equal(t, 3, res.PendientesTotal)
	assert.Equal(t, "33.3", res.TasaRespuesta.String())
	assert.Equal(t, "8", res.PromedioDiasRespuesta.String())

	// la alerta se recalcula: R-3 tiene la bandera almacenada pero su plazo es lejano
	assert.Equal(t, 1, res.AlertasMes)
	estados := map[string]string{}
	for _, it := range res.Lista {
		estados[it.NumeroRadicado] = it.Estado
	}
	assert.Equal(t, map[string]string{
		"R-1": dto.EstadoMesRespondido,
		"R-2": dto.EstadoMesAlerta,
		"R-3": dto.EstadoMesPendiente,
	}, estados)
}

func TestGetResumen_EstadosDelMesParticionanElTotal(t *testing.T) {
	for _, mes := range []string{"", "2024-12", "2025-02", "2023-06"} {
		res, err := buildResumen().GetResumen(context.Background(), mes)
		require.NoError(t, err)
		assert.Equal(t, res.TotalMes, res.RespondidosMes+res.PendientesMes+res.AlertasMes, "mes %q", mes)

		porEstado := map[string]int{}
		for _, it := range res.Lista {
			porEstado[it.Estado]++
		}
		assert.Equal(t, res.RespondidosMes, porEstado[dto.EstadoMesRespondido], "mes %q", mes)
		assert.Equal(t, res.PendientesMes, porEstado[dto.EstadoMesPendiente], "mes %q", mes)
		assert.Equal(t, res.AlertasMes, porEstado[dto.EstadoMesAlerta], "mes %q", mes)
	}
}

func TestGetResumen_CanalesSobreTodosLosRadicados(t *testing.T) {
	res, err := buildResumen().GetResumen(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []dto.CanalCountDTO{
		{Canal: analytics.CanalCorreo, Total: 2},
		{Canal: "Fax", Total: 1},
		{Canal: analytics.CanalOtro, Total: 1},
		{Canal: analytics.CanalPresencial, Total: 1},
	}, res.PorCanal)
}

func TestGetResumen_MesIndicado(t *testing.T) {
	res, err := buildResumen().GetResumen(context.Background(), "2024-12")
	require.NoError(t, err)

	assert.Equal(t, "Diciembre 2024", res.Mes)
	assert.Equal(t, 1, res.TotalMes)
	assert.Equal(t, 1, res.AlertasMes, "plazo derivado de la radicación ya vencido")
	assert.True(t, res.TasaRespuesta.IsZero())
}

func TestGetResumen_MesSinRadicados(t *testing.T) {
	res, err := buildResumen().GetResumen(context.Background(), "2023-06")
	require.NoError(t, err)
	assert.Zero(t, res.TotalMes)
	assert.NotNil(t, res.Lista)
	assert.True(t, res.PromedioDiasRespuesta.IsZero())
}

func TestGetResumen_MesInvalido(t *testing.T) {
	_, err := buildResumen().GetResumen(context.Background(), "enero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
