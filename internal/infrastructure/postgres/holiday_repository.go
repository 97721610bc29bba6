package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

var _ repository.HolidayRepository = (*HolidayRepo)(nil)

// HolidayRepo festivos almacenados en la tabla festivos_colombia (fecha DATE PK, nombre TEXT).
type HolidayRepo struct {
	q     Querier
	table string
	loc   *time.Location
}

// NewHolidayRepository construye el adaptador. Las fechas se devuelven en loc.
func NewHolidayRepository(q Querier, schema, table string, loc *time.Location) *HolidayRepo {
	return &HolidayRepo{q: q, table: tableName(schema, table), loc: loc}
}

func (r *HolidayRepo) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	var fecha time.Time
	err := r.q.QueryRow(ctx, `SELECT fecha FROM `+r.table+` WHERE fecha = $1`, dates.Key(date)).Scan(&fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("consultar festivo %s: %w", dates.Key(date), err)
	}
	return true, nil
}

func (r *HolidayRepo) HolidaysForYear(ctx context.Context, year int) ([]entity.Holiday, error) {
	q := `SELECT fecha, nombre FROM ` + r.table + ` WHERE fecha BETWEEN $1 AND $2 ORDER BY fecha`
	rows, err := r.q.Query(ctx, q, fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
	if err != nil {
		return nil, fmt.Errorf("listar festivos %d: %w", year, err)
	}
	defer rows.Close()

	var list []entity.Holiday
	for rows.Next() {
		var fecha time.Time
		var nombre *string
		if err := rows.Scan(&fecha, &nombre); err != nil {
			return nil, fmt.Errorf("scan festivo: %w", err)
		}
		list = append(list, entity.Holiday{Date: dates.DateOf(fecha, r.loc), Name: deref(nombre)})
	}
	return list, rows.Err()
}

// Upsert inserta el festivo o actualiza su nombre si la fecha ya existe.
func (r *HolidayRepo) Upsert(ctx context.Context, h entity.Holiday) error {
	q := `INSERT INTO ` + r.table + ` (fecha, nombre) VALUES ($1, $2)
		ON CONFLICT (fecha) DO UPDATE SET nombre = EXCLUDED.nombre`
	if _, err := r.q.Exec(ctx, q, dates.Key(h.Date), h.Name); err != nil {
		return fmt.Errorf("upsert festivo %s: %w", dates.Key(h.Date), err)
	}
	return nil
}
