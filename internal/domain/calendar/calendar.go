// Package calendar implementa el calendario hábil colombiano: festivos,
// conteo y proyección de días hábiles y clasificación de alertas por plazo.
//
// Un día es hábil si no es sábado, domingo ni festivo. Los conteos son
// semiabiertos: CountBusinessDays(a, b) cuenta los días hábiles d con a < d <= b.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

// ErrInvalidBusinessDays se devuelve al proyectar un número de días no positivo.
var ErrInvalidBusinessDays = fmt.Errorf("%w: el número de días hábiles debe ser mayor que cero", domain.ErrInvalidInput)

// Calendar responde preguntas sobre días hábiles en una zona horaria fija.
type Calendar struct {
	source repository.HolidaySource
	loc    *time.Location
	log    zerolog.Logger
	now    func() time.Time
}

// Option configura un Calendar.
type Option func(*Calendar)

// WithClock reemplaza el reloj usado para calcular "hoy".
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

// New construye el calendario sobre la fuente de festivos dada.
func New(source repository.HolidaySource, loc *time.Location, log zerolog.Logger, opts ...Option) *Calendar {
	c := &Calendar{source: source, loc: loc, log: log, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Location zona horaria del calendario.
func (c *Calendar) Location() *time.Location { return c.loc }

// Today día actual en la zona del calendario.
func (c *Calendar) Today() time.Time {
	return dates.DateOf(c.now().In(c.loc), c.loc)
}

// IsHoliday consulta la fuente de festivos. Si la fuente falla se asume día no festivo.
func (c *Calendar) IsHoliday(ctx context.Context, date time.Time) bool {
	d := dates.DateOf(date, c.loc)
	ok, err := c.source.IsHoliday(ctx, d)
	if err != nil {
		if ctx.Err() == nil {
			c.degraded(err, dates.Key(d), d.Year())
		}
		return false
	}
	return ok
}

// Holidays lista los festivos de un año. A diferencia del conteo, aquí el error sí se propaga.
func (c *Calendar) Holidays(ctx context.Context, year int) ([]entity.Holiday, error) {
	hs, err := c.source.HolidaysForYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("festivos %d: %w", year, err)
	}
	return hs, nil
}

// Snapshot abre un cálculo: los festivos se cargan una vez por año y se comparten
// entre todas las operaciones hechas con el mismo Snapshot. Es seguro para uso concurrente.
func (c *Calendar) Snapshot() *Snapshot {
	return &Snapshot{cal: c, years: make(map[int]map[string]struct{})}
}

// IsBusinessDay indica si la fecha es día hábil.
func (c *Calendar) IsBusinessDay(ctx context.Context, date time.Time) bool {
	return c.Snapshot().IsBusinessDay(ctx, date)
}

// CountBusinessDays cuenta los días hábiles en (start, end]. Devuelve 0 si end <= start.
func (c *Calendar) CountBusinessDays(ctx context.Context, start, end time.Time) int {
	return c.Snapshot().CountBusinessDays(ctx, start, end)
}

// AddBusinessDays devuelve el n-ésimo día hábil posterior a start.
func (c *Calendar) AddBusinessDays(ctx context.Context, start time.Time, n int) (time.Time, error) {
	return c.Snapshot().AddBusinessDays(ctx, start, n)
}

// BusinessDaysUntil días hábiles desde hoy (excluido) hasta deadline. 0 si ya venció.
func (c *Calendar) BusinessDaysUntil(ctx context.Context, deadline time.Time) int {
	return c.Snapshot().BusinessDaysUntil(ctx, deadline)
}

func (c *Calendar) degraded(err error, key string, year int) {
	ev := c.log.Warn().Err(err).Str("evento", "holiday_source_degraded").Int("anio", year)
	if key != "" {
		ev = ev.Str("fecha", key)
	}
	ev.Msg("fuente de festivos no disponible, se asume día no festivo")
}

// Snapshot festivos de los años consultados durante un único cálculo.
type Snapshot struct {
	cal   *Calendar
	mu    sync.Mutex
	years map[int]map[string]struct{}
}

func (s *Snapshot) holidaysOf(ctx context.Context, year int) map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if set, ok := s.years[year]; ok {
		return set
	}
	set := make(map[string]struct{})
	hs, err := s.cal.source.HolidaysForYear(ctx, year)
	if err != nil {
		if ctx.Err() != nil {
			// cálculo cancelado: no es una caída de la fuente y no se memoriza
			return set
		}
		// el año queda vacío para no reintentar en cada día del mismo cálculo
		s.cal.degraded(err, "", year)
	}
	for _, h := range hs {
		set[dates.Key(h.Date)] = struct{}{}
	}
	s.years[year] = set
	return set
}

// IsHoliday consulta el festivo en los datos cargados del año.
func (s *Snapshot) IsHoliday(ctx context.Context, date time.Time) bool {
	d := dates.DateOf(date, s.cal.loc)
	_, ok := s.holidaysOf(ctx, d.Year())[dates.Key(d)]
	return ok
}

// IsBusinessDay indica si la fecha no es sábado, domingo ni festivo.
func (s *Snapshot) IsBusinessDay(ctx context.Context, date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !s.IsHoliday(ctx, date)
}

// CountBusinessDays cuenta los días hábiles en (start, end].
func (s *Snapshot) CountBusinessDays(ctx context.Context, start, end time.Time) int {
	from := dates.DateOf(start, s.cal.loc)
	to := dates.DateOf(end, s.cal.loc)
	count := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		if s.IsBusinessDay(ctx, d) {
			count++
		}
	}
	return count
}

// AddBusinessDays avanza desde start hasta acumular n días hábiles. n debe ser > 0.
func (s *Snapshot) AddBusinessDays(ctx context.Context, start time.Time, n int) (time.Time, error) {
	if n <= 0 {
		return time.Time{}, ErrInvalidBusinessDays
	}
	d := dates.DateOf(start, s.cal.loc)
	for added := 0; added < n; {
		if err := ctx.Err(); err != nil {
			return time.Time{}, err
		}
		d = d.AddDate(0, 0, 1)
		if s.IsBusinessDay(ctx, d) {
			added++
		}
	}
	return d, nil
}

// BusinessDaysUntil días hábiles entre hoy y deadline; 0 si deadline <= hoy.
func (s *Snapshot) BusinessDaysUntil(ctx context.Context, deadline time.Time) int {
	return s.CountBusinessDays(ctx, s.cal.Today(), deadline)
}

// IsInvalidBusinessDays reporta si err proviene de una proyección con n inválido.
func IsInvalidBusinessDays(err error) bool {
	return errors.Is(err, ErrInvalidBusinessDays)
}
