// Package memory implementa los puertos de persistencia en memoria para las pruebas
// de casos de uso y handlers.
//
// No es un backend de ejecución: cmd/api siempre usa internal/infrastructure/postgres
// y ningún código fuera de archivos _test.go importa este paquete.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
)

var _ repository.RadicadoRepository = (*RadicadoStore)(nil)

// RadicadoStore almacén de radicados protegido por mutex.
type RadicadoStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.Radicado

	// FailSetAlertFlag simula la caída de la escritura de banderas.
	FailSetAlertFlag error
	// SetAlertFlagCalls registra cada lote escrito (valor -> ids).
	SetAlertFlagCalls []AlertFlagCall
}

// AlertFlagCall un lote de SetAlertFlag.
type AlertFlagCall struct {
	IDs   []string
	Value bool
}

// NewRadicadoStore crea el almacén con datos iniciales.
func NewRadicadoStore(seed ...*entity.Radicado) *RadicadoStore {
	s := &RadicadoStore{byID: make(map[string]*entity.Radicado)}
	for _, r := range seed {
		cp := *r
		s.byID[r.ID] = &cp
	}
	return s
}

func (s *RadicadoStore) Create(_ context.Context, r *entity.Radicado) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.NumeroRadicado == r.NumeroRadicado {
			return domain.ErrDuplicate
		}
	}
	cp := *r
	s.byID[r.ID] = &cp
	return nil
}

func (s *RadicadoStore) GetByID(_ context.Context, id string) (*entity.Radicado, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *RadicadoStore) List(_ context.Context, f entity.RadicadoFilter) ([]*entity.Radicado, int, error) {
	all := s.filter(func(r *entity.Radicado) bool { return matches(r, f) })
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if f.Offset >= total {
		return nil, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < total {
		end = f.Offset + f.Limit
	}
	return all[f.Offset:end], total, nil
}

func matches(r *entity.Radicado, f entity.RadicadoFilter) bool {
	switch f.Estado {
	case entity.EstadoPendientes:
		if r.Responded() {
			return false
		}
	case entity.EstadoRespondidos:
		if !r.Responded() {
			return false
		}
	case entity.EstadoAlertas:
		if !r.Alerta {
			return false
		}
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	for _, field := range []string{r.NumeroRadicado, r.Funcionario, r.Tema, r.Remitente} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (s *RadicadoStore) ListPending(_ context.Context) ([]*entity.Radicado, error) {
	return s.filter(func(r *entity.Radicado) bool { return !r.Responded() }), nil
}

func (s *RadicadoStore) ListByIntakeRange(_ context.Context, from, to time.Time) ([]*entity.Radicado, error) {
	list := s.filter(func(r *entity.Radicado) bool {
		return r.FechaRadicado != nil && !r.FechaRadicado.Before(from) && !r.FechaRadicado.After(to)
	})
	sort.Slice(list, func(i, j int) bool { return list[i].FechaRadicado.Before(*list[j].FechaRadicado) })
	return list, nil
}

func (s *RadicadoStore) CountPending(ctx context.Context) (int, error) {
	list, _ := s.ListPending(ctx)
	return len(list), nil
}

func (s *RadicadoStore) CountByChannel(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, r := range s.filter(func(*entity.Radicado) bool { return true }) {
		out[r.Canal]++
	}
	return out, nil
}

func (s *RadicadoStore) SetAlertFlag(_ context.Context, ids []string, value bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSetAlertFlag != nil {
		return 0, s.FailSetAlertFlag
	}
	s.SetAlertFlagCalls = append(s.SetAlertFlagCalls, AlertFlagCall{IDs: append([]string(nil), ids...), Value: value})
	var n int64
	for _, id := range ids {
		if r, ok := s.byID[id]; ok {
			r.Alerta = value
			n++
		}
	}
	return n, nil
}

func (s *RadicadoStore) MarkResponded(_ context.Context, id string, resp entity.CompleteResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok || r.Responded() {
		return domain.ErrAlreadyResponded
	}
	at := resp.RespondedAt
	r.FechaRadicadoRespuesta = &at
	r.DiasRespuesta = resp.DiasRespuesta
	r.Alerta = false
	if resp.NumeroRespuesta != nil {
		r.NumeroRadicadoRespuesta = *resp.NumeroRespuesta
	}
	if resp.RequirioVisita != nil {
		r.RequirioVisita = *resp.RequirioVisita
	}
	if resp.Parcial != nil {
		r.RespuestaParcial = *resp.Parcial
	}
	return nil
}

func (s *RadicadoStore) RegisterPartialResponse(_ context.Context, id string, resp entity.PartialResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	limite := resp.NuevaFechaLimite
	r.NumeroRadicadoRespuesta = resp.NumeroRespuesta
	r.RequirioVisita = resp.RequirioVisita
	r.RespuestaParcial = entity.RespuestaParcialSi
	r.FechaLimiteRespuesta = &limite
	r.FechaRadicadoRespuesta = nil
	r.Alerta = false
	return nil
}

func (s *RadicadoStore) AverageResponseDays(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum, n int64
	for _, r := range s.filter(func(r *entity.Radicado) bool {
		return r.DiasRespuesta != nil && r.FechaRadicado != nil &&
			!r.FechaRadicado.Before(from) && !r.FechaRadicado.After(to)
	}) {
		sum += int64(*r.DiasRespuesta)
		n++
	}
	if n == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(n)).Round(2), nil
}

// RunRadicados ejecuta fn sobre el mismo almacén (sin aislamiento transaccional).
func (s *RadicadoStore) RunRadicados(ctx context.Context, fn func(repo repository.RadicadoRepository) error) error {
	return fn(s)
}

func (s *RadicadoStore) filter(keep func(*entity.Radicado) bool) []*entity.Radicado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Radicado
	for _, r := range s.byID {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}
