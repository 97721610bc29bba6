package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

var _ repository.HolidayRepository = (*HolidayStore)(nil)

// HolidayStore festivos en memoria indexados por fecha YYYY-MM-DD.
type HolidayStore struct {
	mu     sync.RWMutex
	byDate map[string]entity.Holiday
	// Err si no es nil se devuelve en todas las lecturas.
	Err error
}

// NewHolidayStore crea el almacén con festivos iniciales.
func NewHolidayStore(seed ...entity.Holiday) *HolidayStore {
	s := &HolidayStore{byDate: make(map[string]entity.Holiday)}
	for _, h := range seed {
		s.byDate[dates.Key(h.Date)] = h
	}
	return s
}

func (s *HolidayStore) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return false, s.Err
	}
	_, ok := s.byDate[dates.Key(date)]
	return ok, nil
}

func (s *HolidayStore) HolidaysForYear(_ context.Context, year int) ([]entity.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []entity.Holiday
	for _, h := range s.byDate {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *HolidayStore) Upsert(_ context.Context, h entity.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byDate[dates.Key(h.Date)] = h
	return nil
}
