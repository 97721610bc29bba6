package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

// MaxProjectedDays tope de días hábiles aceptado por la calculadora.
const MaxProjectedDays = 365

// CalendarUseCase calculadora de días hábiles y mantenimiento de festivos.
type CalendarUseCase struct {
	cal      *calendar.Calendar
	holidays repository.HolidayRepository // nil con la fuente estática
	log      zerolog.Logger
}

// NewCalendarUseCase construye el caso de uso. holidays nil deshabilita UpsertHoliday.
func NewCalendarUseCase(cal *calendar.Calendar, holidays repository.HolidayRepository, log zerolog.Logger) *CalendarUseCase {
	return &CalendarUseCase{cal: cal, holidays: holidays, log: log}
}

// CountBusinessDays días hábiles en (desde, hasta].
func (uc *CalendarUseCase) CountBusinessDays(ctx context.Context, desde, hasta string) (*dto.BusinessDaysResponse, error) {
	from, err := dates.Parse(desde, uc.cal.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: desde: %v", domain.ErrInvalidInput, err)
	}
	to, err := dates.Parse(hasta, uc.cal.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: hasta: %v", domain.ErrInvalidInput, err)
	}
	return &dto.BusinessDaysResponse{
		Desde:       dates.Key(from),
		Hasta:       dates.Key(to),
		DiasHabiles: uc.cal.CountBusinessDays(ctx, from, to),
	}, nil
}

// ProjectDeadline fecha que resulta de sumar n días hábiles (1..365) a desde.
func (uc *CalendarUseCase) ProjectDeadline(ctx context.Context, desde string, n int) (*dto.DeadlineResponse, error) {
	if n > MaxProjectedDays {
		return nil, fmt.Errorf("%w: máximo %d días hábiles", domain.ErrInvalidInput, MaxProjectedDays)
	}
	from, err := dates.Parse(desde, uc.cal.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: desde: %v", domain.ErrInvalidInput, err)
	}
	limite, err := uc.cal.AddBusinessDays(ctx, from, n)
	if err != nil {
		return nil, err
	}
	return &dto.DeadlineResponse{
		Desde:       dates.Key(from),
		DiasHabiles: n,
		FechaLimite: dates.Key(limite),
	}, nil
}

// Holidays festivos del año. A diferencia del cálculo, un fallo de la fuente se propaga.
func (uc *CalendarUseCase) Holidays(ctx context.Context, year int) (*dto.HolidayListResponse, error) {
	if year < 1900 || year > 2200 {
		return nil, fmt.Errorf("%w: año fuera de rango", domain.ErrInvalidInput)
	}
	hs, err := uc.cal.Holidays(ctx, year)
	if err != nil {
		return nil, err
	}
	out := &dto.HolidayListResponse{Anio: year, Festivos: make([]dto.HolidayDTO, 0, len(hs))}
	for _, h := range hs {
		out.Festivos = append(out.Festivos, dto.HolidayDTO{Fecha: dates.Key(h.Date), Nombre: h.Name})
	}
	return out, nil
}

// UpsertHoliday crea o renombra un festivo en la tabla remota.
// Con la fuente estática devuelve ErrConflict: los festivos se calculan, no se editan.
func (uc *CalendarUseCase) UpsertHoliday(ctx context.Context, in dto.UpsertHolidayRequest) (*dto.HolidayDTO, error) {
	if uc.holidays == nil {
		return nil, fmt.Errorf("%w: la fuente de festivos es estática", domain.ErrConflict)
	}
	d, err := dates.Parse(in.Fecha, uc.cal.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if err := uc.holidays.Upsert(ctx, entity.Holiday{Date: d, Name: name}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("fecha", dates.Key(d)).Str("nombre", name).Msg("festivo registrado")
	return &dto.HolidayDTO{Fecha: dates.Key(d), Nombre: name}, nil
}
