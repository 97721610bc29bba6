package calendar

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

var _ repository.HolidaySource = (*StaticSource)(nil)

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

type easterHoliday struct {
	offset int // días desde el Domingo de Pascua
	name   string
}

// Festivos de fecha fija.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.July, 20, "Día de la Independencia"},
	{time.August, 7, "Batalla de Boyacá"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// Festivos que se trasladan al lunes siguiente (Ley 51 de 1983).
var mondayHolidays = []fixedHoliday{
	{time.January, 6, "Día de los Reyes Magos"},
	{time.March, 19, "Día de San José"},
	{time.June, 29, "San Pedro y San Pablo"},
	{time.August, 15, "Asunción de la Virgen"},
	{time.October, 12, "Día de la Raza"},
	{time.November, 1, "Todos los Santos"},
	{time.November, 11, "Independencia de Cartagena"},
}

// Festivos móviles relativos a Pascua. Ascensión, Corpus y Sagrado Corazón ya caen en lunes.
var easterHolidays = []easterHoliday{
	{-3, "Jueves Santo"},
	{-2, "Viernes Santo"},
	{43, "Ascensión del Señor"},
	{64, "Corpus Christi"},
	{71, "Sagrado Corazón de Jesús"},
}

// EasterSunday calcula el Domingo de Pascua gregoriano (algoritmo de Meeus/Jones/Butcher).
func EasterSunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

func nextMonday(t time.Time) time.Time {
	if t.Weekday() == time.Monday {
		return t
	}
	return t.AddDate(0, 0, (8-int(t.Weekday()))%7)
}

// ColombianHolidays genera los festivos nacionales del año, ordenados por fecha.
// Si dos festivos coinciden en la misma fecha se unen en una sola entrada.
func ColombianHolidays(year int, loc *time.Location) []entity.Holiday {
	byDate := make(map[string]*entity.Holiday, 20)
	add := func(d time.Time, name string) {
		key := dates.Key(d)
		if h, ok := byDate[key]; ok {
			if !strings.Contains(h.Name, name) {
				h.Name += " / " + name
			}
			return
		}
		byDate[key] = &entity.Holiday{Date: d, Name: name}
	}

	for _, f := range fixedHolidays {
		add(time.Date(year, f.month, f.day, 0, 0, 0, 0, loc), f.name)
	}
	for _, f := range mondayHolidays {
		add(nextMonday(time.Date(year, f.month, f.day, 0, 0, 0, 0, loc)), f.name)
	}
	easter := EasterSunday(year, loc)
	for _, e := range easterHolidays {
		add(easter.AddDate(0, 0, e.offset), e.name)
	}

	out := make([]entity.Holiday, 0, len(byDate))
	for _, h := range byDate {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// StaticSource fuente de festivos calculada en memoria, sin acceso a red.
type StaticSource struct {
	loc *time.Location
}

// NewStaticSource construye la fuente estática para la zona horaria dada.
func NewStaticSource(loc *time.Location) *StaticSource {
	return &StaticSource{loc: loc}
}

func (s *StaticSource) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	key := dates.Key(dates.DateOf(date, s.loc))
	for _, h := range ColombianHolidays(date.Year(), s.loc) {
		if dates.Key(h.Date) == key {
			return true, nil
		}
	}
	return false, nil
}

func (s *StaticSource) HolidaysForYear(_ context.Context, year int) ([]entity.Holiday, error) {
	return ColombianHolidays(year, s.loc), nil
}
