package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

func ptr(t time.Time) *time.Time { return &t }

// fixedToday: lunes 20 de enero de 2025, media mañana.
func fixedToday() calendar.Option {
	return calendar.WithClock(func() time.Time {
		return time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC)
	})
}

func TestClassify_Limites(t *testing.T) {
	p := calendar.DefaultPolicy()
	cases := []struct {
		remaining int
		want      calendar.AlertLevel
	}{
		{-5, calendar.LevelCritical},
		{0, calendar.LevelCritical},
		{3, calendar.LevelCritical},
		{4, calendar.LevelWarning},
		{7, calendar.LevelWarning},
		{8, calendar.LevelInfo},
		{10, calendar.LevelInfo},
		{11, calendar.LevelNone},
		{40, calendar.LevelNone},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, p.Classify(c.remaining), "restantes=%d", c.remaining)
		// misma entrada, mismo nivel
		assert.Equal(t, p.Classify(c.remaining), p.Classify(c.remaining))
	}
	assert.True(t, p.ShouldAlert(10))
	assert.False(t, p.ShouldAlert(11))
}

func TestClassify_PoliticaConfigurada(t *testing.T) {
	p := calendar.Policy{ResponseDays: 20, PartialResponseDays: 10, AlertThreshold: 5, CriticalDays: 1, WarningDays: 3}
	assert.Equal(t, calendar.LevelCritical, p.Classify(1))
	assert.Equal(t, calendar.LevelWarning, p.Classify(2))
	assert.Equal(t, calendar.LevelInfo, p.Classify(5))
	assert.Equal(t, calendar.LevelNone, p.Classify(6))
}

func TestToday_UsaLaZonaDelCalendario(t *testing.T) {
	// 03:00 UTC del 21 es todavía 20 de enero en Bogotá
	cal := newCalendar(calendar.WithClock(func() time.Time {
		return time.Date(2025, 1, 21, 3, 0, 0, 0, time.UTC)
	}))
	assert.Equal(t, "2025-01-20", dates.Key(cal.Today()))
}

func TestEvaluate_FechaLimiteExplicita(t *testing.T) {
	cal := newCalendar(fixedToday())
	r := &entity.Radicado{
		FechaRadicado:        ptr(day(2024, 12, 20)),
		FechaLimiteRespuesta: ptr(time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)),
	}

	ev, ok := cal.Snapshot().Evaluate(context.Background(), r, calendar.DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, "2025-01-22", dates.Key(ev.Deadline))
	assert.False(t, ev.Derived)
	assert.Equal(t, 2, ev.Remaining)
	assert.Equal(t, calendar.LevelCritical, ev.Level)
	assert.True(t, ev.Alert)
}

func TestEvaluate_DerivaDeFechaDeAsignacion(t *testing.T) {
	cal := newCalendar(fixedToday())
	r := &entity.Radicado{
		FechaRadicado:   ptr(day(2025, 1, 2)),
		FechaAsignacion: ptr(day(2025, 1, 6)),
	}

	ev, ok := cal.Snapshot().Evaluate(context.Background(), r, calendar.DefaultPolicy())
	require.True(t, ok)
	assert.True(t, ev.Derived)
	assert.Equal(t, "2025-01-28", dates.Key(ev.Deadline))
	assert.Equal(t, 6, ev.Remaining)
	assert.Equal(t, calendar.LevelWarning, ev.Level)
}

func TestEvaluate_SinAsignacionUsaFechaDeRadicacion(t *testing.T) {
	cal := newCalendar(fixedToday())
	r := &entity.Radicado{FechaRadicado: ptr(day(2025, 1, 6))}

	ev, ok := cal.Snapshot().Evaluate(context.Background(), r, calendar.DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, "2025-01-28", dates.Key(ev.Deadline))
}

func TestEvaluate_VencidoEsCritico(t *testing.T) {
	cal := newCalendar(fixedToday())
	r := &entity.Radicado{FechaLimiteRespuesta: ptr(day(2025, 1, 10))}

	ev, ok := cal.Snapshot().Evaluate(context.Background(), r, calendar.DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, 0, ev.Remaining)
	assert.True(t, ev.Overdue())
	assert.Equal(t, calendar.LevelCritical, ev.Level)
}

func TestEvaluate_PlazoLejanoSinAlerta(t *testing.T) {
	cal := newCalendar(fixedToday())
	r := &entity.Radicado{FechaLimiteRespuesta: ptr(day(2025, 3, 3))}

	ev, ok := cal.Snapshot().Evaluate(context.Background(), r, calendar.DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, calendar.LevelNone, ev.Level)
	assert.False(t, ev.Alert)
}

func TestEvaluate_RespondidoNuncaSeClasifica(t *testing.T) {
	cal := newCalendar(fixedToday())
	r := &entity.Radicado{
		FechaLimiteRespuesta:   ptr(day(2025, 1, 10)),
		FechaRadicadoRespuesta: ptr(day(2025, 1, 9)),
	}

	_, ok := cal.Snapshot().Evaluate(context.Background(), r, calendar.DefaultPolicy())
	assert.False(t, ok)
}

func TestEvaluate_SinFechasSeExcluyeSinError(t *testing.T) {
	cal := newCalendar(fixedToday())

	_, ok := cal.Snapshot().Evaluate(context.Background(), &entity.Radicado{NumeroRadicado: "R-1"}, calendar.DefaultPolicy())
	assert.False(t, ok)

	_, ok = cal.Snapshot().Evaluate(context.Background(), nil, calendar.DefaultPolicy())
	assert.False(t, ok)
}

func TestRemainingText(t *testing.T) {
	assert.Equal(t, "Vencido", calendar.RemainingText(0))
	assert.Equal(t, "Vencido", calendar.RemainingText(-2))
	assert.Equal(t, "1 día hábil", calendar.RemainingText(1))
	assert.Equal(t, "7 días hábiles", calendar.RemainingText(7))
}
