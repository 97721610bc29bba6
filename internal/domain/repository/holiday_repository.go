package repository

import (
	"context"
	"time"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
)

// HolidaySource fuente de festivos consultada por el calendario hábil.
type HolidaySource interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	HolidaysForYear(ctx context.Context, year int) ([]entity.Holiday, error)
}

// HolidayRepository fuente de festivos administrable (tabla remota).
type HolidayRepository interface {
	HolidaySource
	Upsert(ctx context.Context, h entity.Holiday) error
}
