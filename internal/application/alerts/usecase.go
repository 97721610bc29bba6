// Package alerts calcula el tablero de alertas de radicados pendientes y
// sincroniza la bandera alerta almacenada con el resultado del cálculo.
package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/ports"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

const defaultConcurrency = 8

// TxRunner ejecuta la escritura de banderas en una sola transacción.
type TxRunner interface {
	RunRadicados(ctx context.Context, fn func(repo repository.RadicadoRepository) error) error
}

// AlertsUseCase clasificación por plazo de los radicados pendientes.
type AlertsUseCase struct {
	repo        repository.RadicadoRepository
	tx          TxRunner
	cal         *calendar.Calendar
	policy      calendar.Policy
	report      ports.AlertReportGenerator
	log         zerolog.Logger
	concurrency int
}

// NewAlertsUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewAlertsUseCase(
	repo repository.RadicadoRepository,
	tx TxRunner,
	cal *calendar.Calendar,
	policy calendar.Policy,
	report ports.AlertReportGenerator,
	log zerolog.Logger,
) *AlertsUseCase {
	return &AlertsUseCase{
		repo:        repo,
		tx:          tx,
		cal:         cal,
		policy:      policy,
		report:      report,
		log:         log,
		concurrency: defaultConcurrency,
	}
}

// Refresh clasifica los pendientes. Con syncFlags escribe en la base la bandera alerta
// de los radicados cuyo valor almacenado difiere del calculado.
//
// Una falla de escritura no anula la clasificación: se informa en Sync.
func (uc *AlertsUseCase) Refresh(ctx context.Context, syncFlags bool) (*dto.AlertsResponse, error) {
	pending, err := uc.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: listar pendientes: %w", err)
	}

	// Un snapshot por cálculo: los festivos de cada año se cargan una vez.
	snap := uc.cal.Snapshot()
	evals := make([]calendar.Evaluation, len(pending))
	resolved := make([]bool, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, r := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			evals[i], resolved[i] = snap.Evaluate(gctx, r, uc.policy)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("alertas: clasificar: %w", err)
	}
	// Evaluate devuelve ok=false también ante un contexto cancelado.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("alertas: clasificar: %w", err)
	}

	out := &dto.AlertsResponse{
		Alertas:     []dto.AlertItemDTO{},
		GeneratedAt: time.Now(),
	}
	out.Stats.TotalPendientes = len(pending)

	var toTrue, toFalse []string
	for i, r := range pending {
		if !resolved[i] {
			if r.Alerta {
				toFalse = append(toFalse, r.ID)
			}
			continue
		}
		ev := evals[i]
		switch {
		case ev.Overdue():
			out.Stats.Vencidos++
		case ev.Remaining <= uc.policy.AlertThreshold:
			out.Stats.ProximosAVencer++
		}
		if ev.Alert {
			out.Alertas = append(out.Alertas, toAlertItem(ev))
			if !r.Alerta {
				toTrue = append(toTrue, r.ID)
			}
		} else if r.Alerta {
			toFalse = append(toFalse, r.ID)
		}
	}
	out.Stats.EnAlerta = out.Stats.Vencidos + out.Stats.ProximosAVencer

	sort.SliceStable(out.Alertas, func(i, j int) bool {
		a, b := out.Alertas[i], out.Alertas[j]
		if a.DiasRestantes != b.DiasRestantes {
			return a.DiasRestantes < b.DiasRestantes
		}
		return a.NumeroRadicado < b.NumeroRadicado
	})

	if syncFlags {
		out.Sync = uc.syncFlags(ctx, toTrue, toFalse)
	}
	return out, nil
}

func (uc *AlertsUseCase) syncFlags(ctx context.Context, toTrue, toFalse []string) dto.AlertSyncDTO {
	res := dto.AlertSyncDTO{Attempted: true}
	if len(toTrue) == 0 && len(toFalse) == 0 {
		res.OK = true
		return res
	}
	err := uc.tx.RunRadicados(ctx, func(repo repository.RadicadoRepository) error {
		raised, err := repo.SetAlertFlag(ctx, toTrue, true)
		if err != nil {
			return err
		}
		cleared, err := repo.SetAlertFlag(ctx, toFalse, false)
		if err != nil {
			return err
		}
		res.Raised, res.Cleared = raised, cleared
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).
			Int("marcar", len(toTrue)).
			Int("desmarcar", len(toFalse)).
			Msg("no se pudo sincronizar la bandera de alerta")
		return dto.AlertSyncDTO{Attempted: true, Error: err.Error()}
	}
	res.OK = true
	uc.log.Info().Int64("marcados", res.Raised).Int64("desmarcados", res.Cleared).Msg("bandera de alerta sincronizada")
	return res
}

// RunScheduled recálculo periódico con escritura de banderas.
func (uc *AlertsUseCase) RunScheduled(ctx context.Context) error {
	res, err := uc.Refresh(ctx, true)
	if err != nil {
		return err
	}
	if !res.Sync.OK {
		return fmt.Errorf("alertas: sincronización fallida: %s", res.Sync.Error)
	}
	uc.log.Info().
		Int("pendientes", res.Stats.TotalPendientes).
		Int("en_alerta", res.Stats.EnAlerta).
		Int("vencidos", res.Stats.Vencidos).
		Msg("recálculo programado de alertas")
	return nil
}

// ReportPDF genera el reporte imprimible con la clasificación actual (sin escribir banderas).
func (uc *AlertsUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("alertas: generador de reportes no configurado")
	}
	res, err := uc.Refresh(ctx, false)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateAlertReport(ctx, res)
}

func toAlertItem(ev calendar.Evaluation) dto.AlertItemDTO {
	r := ev.Radicado
	return dto.AlertItemDTO{
		ID:                   r.ID,
		NumeroRadicado:       r.NumeroRadicado,
		Funcionario:          r.Funcionario,
		Tema:                 r.Tema,
		Remitente:            r.Remitente,
		Canal:                r.Canal,
		FechaRadicado:        dates.FormatISO(r.FechaRadicado),
		FechaLimite:          dates.Key(ev.Deadline),
		FechaLimiteCalculada: ev.Derived,
		DiasRestantes:        ev.Remaining,
		DiasRestantesTexto:   calendar.RemainingText(ev.Remaining),
		Nivel:                string(ev.Level),
	}
}
