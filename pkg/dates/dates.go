// Package dates trabaja con fechas civiles (año, mes, día) sin hora.
//
// Todas las comparaciones de plazos se hacen a nivel de día en una única zona
// horaria configurada. Las columnas DATE de PostgreSQL llegan como medianoche
// UTC; por eso DateOf toma año, mes y día del propio valor y no lo convierte
// con In(loc), que desplazaría la fecha un día hacia atrás en UTC-5.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout formato ISO de fecha usado como clave y en la API.
const Layout = "2006-01-02"

// DateOf devuelve la medianoche en loc del día civil de t.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today devuelve el día actual en loc.
func Today(loc *time.Location) time.Time {
	return DateOf(time.Now().In(loc), loc)
}

// Key devuelve la clave YYYY-MM-DD de t.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Parse interpreta "YYYY-MM-DD" o un timestamp ISO (solo se usa la parte de fecha).
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseOptional como Parse pero devuelve nil para cadenas vacías.
func ParseOptional(s string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MonthRange devuelve el primer y el último día del mes de t.
func MonthRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return first, first.AddDate(0, 1, -1)
}

// Format devuelve la fecha como DD/MM/YYYY o "" si es nil.
func Format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatISO devuelve la fecha como YYYY-MM-DD o nil.
func FormatISO(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Key(*t)
	return &s
}
