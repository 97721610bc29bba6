package calendar

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

// Evaluation estado de plazo de un radicado pendiente.
type Evaluation struct {
	Radicado  *entity.Radicado
	Deadline  time.Time
	Derived   bool // fecha límite calculada desde la fecha de asignación/radicación
	Remaining int
	Level     AlertLevel
	Alert     bool
}

// Overdue indica si el plazo ya se cumplió.
func (e Evaluation) Overdue() bool { return e.Remaining <= 0 }

// ResolveDeadline determina la fecha límite de un radicado: la explícita si existe;
// si no, fecha de asignación (o de radicación) más el plazo estándar.
// ok=false si no hay ninguna fecha con la cual resolver.
func (s *Snapshot) ResolveDeadline(ctx context.Context, r *entity.Radicado, p Policy) (deadline time.Time, derived bool, ok bool) {
	if r.FechaLimiteRespuesta != nil {
		return dates.DateOf(*r.FechaLimiteRespuesta, s.cal.loc), false, true
	}
	intake := r.IntakeDate()
	if intake == nil {
		return time.Time{}, false, false
	}
	d, err := s.AddBusinessDays(ctx, *intake, p.ResponseDays)
	if err != nil {
		return time.Time{}, false, false
	}
	return d, true, true
}

// Evaluate resuelve la fecha límite y clasifica el radicado.
// Devuelve ok=false para radicados respondidos o sin fechas: no participan de las alertas.
func (s *Snapshot) Evaluate(ctx context.Context, r *entity.Radicado, p Policy) (Evaluation, bool) {
	if r == nil || r.Responded() {
		return Evaluation{}, false
	}
	deadline, derived, ok := s.ResolveDeadline(ctx, r, p)
	if !ok {
		return Evaluation{}, false
	}
	remaining := s.BusinessDaysUntil(ctx, deadline)
	return Evaluation{
		Radicado:  r,
		Deadline:  deadline,
		Derived:   derived,
		Remaining: remaining,
		Level:     p.Classify(remaining),
		Alert:     p.ShouldAlert(remaining),
	}, true
}

// RemainingText texto de días restantes para listados y reportes.
func RemainingText(remaining int) string {
	switch {
	case remaining <= 0:
		return "Vencido"
	case remaining == 1:
		return "1 día hábil"
	default:
		return strconv.Itoa(remaining) + " días hábiles"
	}
}
