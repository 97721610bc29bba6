// Package analytics contiene el resumen mensual del tablero de radicados.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

var hundred = decimal.NewFromInt(100)

// ResumenUseCase genera el resumen de los radicados ingresados en un mes.
//
// Fuente de datos: RadicadoRepository (consultas read-only).
// La condición de alerta se recalcula con el calendario; no se lee la columna alerta.
type ResumenUseCase struct {
	repo   repository.RadicadoRepository
	cal    *calendar.Calendar
	policy calendar.Policy
}

// NewResumenUseCase construye el caso de uso.
func NewResumenUseCase(repo repository.RadicadoRepository, cal *calendar.Calendar, policy calendar.Policy) *ResumenUseCase {
	return &ResumenUseCase{repo: repo, cal: cal, policy: policy}
}

// GetResumen resumen del mes indicado ("YYYY-MM"); vacío = mes en curso.
//
// Cuatro consultas en paralelo:
//  1. ListByIntakeRange(mes)    → radicados del mes
//  2. CountPending()            → pendientes totales
//  3. CountByChannel()          → distribución por canal
//  4. AverageResponseDays(mes)  → promedio de días de respuesta
func (uc *ResumenUseCase) GetResumen(ctx context.Context, mes string) (*dto.ResumenMensualDTO, error) {
	ref := uc.cal.Today()
	if mes != "" {
		t, err := time.ParseInLocation("2006-01", mes, uc.cal.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: mes inválido %q, se espera YYYY-MM", domain.ErrInvalidInput, mes)
		}
		ref = t
	}
	from, to := dates.MonthRange(ref, uc.cal.Location())

	type listResult struct {
		items []*entity.Radicado
		err   error
	}
	type countResult struct {
		n   int
		err error
	}
	type canalResult struct {
		counts map[string]int
		err    error
	}
	type avgResult struct {
		avg decimal.Decimal
		err error
	}

	listCh := make(chan listResult, 1)
	pendingCh := make(chan countResult, 1)
	canalCh := make(chan canalResult, 1)
	avgCh := make(chan avgResult, 1)

	go func() {
		items, err := uc.repo.ListByIntakeRange(ctx, from, to)
		listCh <- listResult{items, err}
	}()
	go func() {
		n, err := uc.repo.CountPending(ctx)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		counts, err := uc.repo.CountByChannel(ctx)
		canalCh <- canalResult{counts, err}
	}()
	go func() {
		avg, err := uc.repo.AverageResponseDays(ctx, from, to)
		avgCh <- avgResult{avg, err}
	}()

	list := <-listCh
	pending := <-pendingCh
	canales := <-canalCh
	avg := <-avgCh

	if list.err != nil {
		return nil, fmt.Errorf("resumen: radicados del mes: %w", list.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("resumen: pendientes: %w", pending.err)
	}
	if canales.err != nil {
		return nil, fmt.Errorf("resumen: canales: %w", canales.err)
	}
	if avg.err != nil {
		return nil, fmt.Errorf("resumen: promedio de respuesta: %w", avg.err)
	}

	out := &dto.ResumenMensualDTO{
		Mes:                   monthLabel(from),
		Desde:                 dates.Key(from),
		Hasta:                 dates.Key(to),
		TotalMes:              len(list.items),
		PendientesTotal:       pending.n,
		TasaRespuesta:         decimal.Zero,
		PromedioDiasRespuesta: avg.avg.Round(2),
		PorCanal:              groupByCanal(canales.counts),
		Lista:                 make([]dto.ResumenItemDTO, 0, len(list.items)),
	}

	snap := uc.cal.Snapshot()
	for _, r := range list.items {
		estado := dto.EstadoMesPendiente
		switch {
		case r.Responded():
			estado = dto.EstadoMesRespondido
			out.RespondidosMes++
		default:
			// cada radicado cuenta en un solo estado del mes
			if ev, ok := snap.Evaluate(ctx, r, uc.policy); ok && ev.Alert {
				estado = dto.EstadoMesAlerta
				out.AlertasMes++
			} else {
				out.PendientesMes++
			}
		}
		out.Lista = append(out.Lista, dto.ResumenItemDTO{
			ID:             r.ID,
			NumeroRadicado: r.NumeroRadicado,
			Tema:           r.Tema,
			Fecha:          dates.Format(r.FechaRadicado),
			Estado:         estado,
		})
	}

	if out.TotalMes > 0 {
		out.TasaRespuesta = decimal.NewFromInt(int64(out.RespondidosMes)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(out.TotalMes))).
			Round(1)
	}
	return out, nil
}

// groupByCanal agrupa los conteos crudos por canal normalizado, de mayor a menor.
func groupByCanal(raw map[string]int) []dto.CanalCountDTO {
	merged := make(map[string]int, len(raw))
	for canal, n := range raw {
		merged[NormalizeCanal(canal)] += n
	}
	out := make([]dto.CanalCountDTO, 0, len(merged))
	for canal, n := range merged {
		out = append(out, dto.CanalCountDTO{Canal: canal, Total: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Canal < out[j].Canal
	})
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
