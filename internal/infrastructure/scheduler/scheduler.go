// Package scheduler programa el recálculo periódico de alertas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job trabajo programable; AlertsUseCase lo implementa con RunScheduled.
type Job interface {
	RunScheduled(ctx context.Context) error
}

// AlertScheduler ejecuta el recálculo de alertas según una expresión cron.
type AlertScheduler struct {
	cronEngine *cron.Cron
	job        Job
	spec       string
	timeout    time.Duration
	log        zerolog.Logger

	// running: un solo recálculo a la vez.
	running sync.Mutex
}

// NewAlertScheduler construye el scheduler en la zona horaria del calendario.
func NewAlertScheduler(job Job, spec string, timeout time.Duration, loc *time.Location, log zerolog.Logger) *AlertScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &AlertScheduler{
		cronEngine: cron.New(cron.WithLocation(loc)),
		job:        job,
		spec:       spec,
		timeout:    timeout,
		log:        log,
	}
}

// Start registra el trabajo y arranca el motor. Error si la expresión cron es inválida.
func (s *AlertScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.RunOnce); err != nil {
		return fmt.Errorf("scheduler: expresión %q: %w", s.spec, err)
	}
	s.cronEngine.Start()
	s.log.Info().Str("spec", s.spec).Msg("scheduler de alertas iniciado")
	return nil
}

// RunOnce ejecuta el recálculo con timeout. Si ya hay uno en curso, se omite.
func (s *AlertScheduler) RunOnce() {
	if !s.running.TryLock() {
		s.log.Warn().Msg("recálculo de alertas en curso, se omite esta ejecución")
		return
	}
	defer s.running.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	started := time.Now()
	if err := s.job.RunScheduled(ctx); err != nil {
		s.log.Error().Err(err).Dur("duracion", time.Since(started)).Msg("recálculo programado de alertas fallido")
		return
	}
	s.log.Debug().Dur("duracion", time.Since(started)).Msg("recálculo programado de alertas completado")
}

// Stop detiene el motor y espera a que termine el trabajo en curso.
func (s *AlertScheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler de alertas")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler de alertas detenido")
}
