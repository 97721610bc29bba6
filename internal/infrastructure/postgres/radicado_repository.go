package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
)

var _ repository.RadicadoRepository = (*RadicadoRepo)(nil)

const radicadoColumns = `
	id, funcionario, numero_radicado, fecha_radicado, fecha_asignacion, fecha_limite_respuesta,
	tema, canal, remitente, solicitud, conclusion_respuesta,
	numero_radicado_prorroga, fecha_solicitud_prorroga,
	numero_radicado_respuesta, fecha_radicado_respuesta, dias_respuesta,
	alerta, respuesta_parcial, requirio_visita, created_at`

// RadicadoRepo implementación de RadicadoRepository sobre PostgreSQL.
type RadicadoRepo struct {
	q     Querier
	table string
}

// NewRadicadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRadicadoRepository(q Querier, schema, table string) *RadicadoRepo {
	return &RadicadoRepo{q: q, table: tableName(schema, table)}
}

// WithQuerier devuelve una copia del repositorio atada a otra conexión o transacción.
func (r *RadicadoRepo) WithQuerier(q Querier) *RadicadoRepo {
	return &RadicadoRepo{q: q, table: r.table}
}

func (r *RadicadoRepo) Create(ctx context.Context, rad *entity.Radicado) error {
	q := `
		INSERT INTO ` + r.table + ` (
			id, funcionario, numero_radicado, fecha_radicado, fecha_asignacion, fecha_limite_respuesta,
			tema, canal, remitente, solicitud, alerta, requirio_visita, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, q,
		rad.ID, rad.Funcionario, rad.NumeroRadicado,
		rad.FechaRadicado, rad.FechaAsignacion, rad.FechaLimiteRespuesta,
		nullIfEmpty(rad.Tema), nullIfEmpty(rad.Canal), nullIfEmpty(rad.Remitente), nullIfEmpty(rad.Solicitud),
		rad.Alerta, rad.RequirioVisita, rad.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert radicado: %w", err)
	}
	return nil
}

func (r *RadicadoRepo) GetByID(ctx context.Context, id string) (*entity.Radicado, error) {
	q := `SELECT ` + radicadoColumns + ` FROM ` + r.table + ` WHERE id = $1`
	rad, err := scanRadicado(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get radicado by id: %w", err)
	}
	return rad, nil
}

// List filtra por estado y búsqueda libre; devuelve la página y el total sin paginar.
func (r *RadicadoRepo) List(ctx context.Context, f entity.RadicadoFilter) ([]*entity.Radicado, int, error) {
	where, args := listWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM `+r.table+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count radicados: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, f.Offset)
	q := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		radicadoColumns, r.table, where, len(args)-1, len(args))
	list, err := r.queryList(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list radicados: %w", err)
	}
	return list, total, nil
}

func listWhere(f entity.RadicadoFilter) (string, []any) {
	var conds []string
	var args []any
	switch f.Estado {
	case entity.EstadoPendientes:
		conds = append(conds, "fecha_radicado_respuesta IS NULL")
	case entity.EstadoRespondidos:
		conds = append(conds, "fecha_radicado_respuesta IS NOT NULL")
	case entity.EstadoAlertas:
		conds = append(conds, "alerta = true")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		conds = append(conds, `(numero_radicado ILIKE $1 OR funcionario ILIKE $1 OR tema ILIKE $1 OR remitente ILIKE $1)`)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *RadicadoRepo) ListPending(ctx context.Context) ([]*entity.Radicado, error) {
	q := `SELECT ` + radicadoColumns + ` FROM ` + r.table + `
		WHERE fecha_radicado_respuesta IS NULL ORDER BY fecha_limite_respuesta ASC NULLS LAST`
	list, err := r.queryList(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list radicados pendientes: %w", err)
	}
	return list, nil
}

func (r *RadicadoRepo) ListByIntakeRange(ctx context.Context, from, to time.Time) ([]*entity.Radicado, error) {
	q := `SELECT ` + radicadoColumns + ` FROM ` + r.table + `
		WHERE fecha_radicado BETWEEN $1 AND $2 ORDER BY fecha_radicado ASC, created_at ASC`
	list, err := r.queryList(ctx, q, from, to)
	if err != nil {
		return nil, fmt.Errorf("list radicados por rango: %w", err)
	}
	return list, nil
}

func (r *RadicadoRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM `+r.table+` WHERE fecha_radicado_respuesta IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count radicados pendientes: %w", err)
	}
	return n, nil
}

func (r *RadicadoRepo) CountByChannel(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT COALESCE(canal, ''), count(*) FROM `+r.table+` GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("count radicados por canal: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var canal string
		var n int
		if err := rows.Scan(&canal, &n); err != nil {
			return nil, fmt.Errorf("scan canal: %w", err)
		}
		out[canal] = n
	}
	return out, rows.Err()
}

// SetAlertFlag una sola sentencia por valor destino.
func (r *RadicadoRepo) SetAlertFlag(ctx context.Context, ids []string, value bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx, `UPDATE `+r.table+` SET alerta = $1 WHERE id = ANY($2)`, value, ids)
	if err != nil {
		return 0, fmt.Errorf("update alerta=%t: %w", value, err)
	}
	return tag.RowsAffected(), nil
}

func (r *RadicadoRepo) MarkResponded(ctx context.Context, id string, resp entity.CompleteResponse) error {
	q := `
		UPDATE ` + r.table + ` SET
			fecha_radicado_respuesta = $2,
			dias_respuesta = $3,
			alerta = false,
			numero_radicado_respuesta = COALESCE($4, numero_radicado_respuesta),
			requirio_visita = COALESCE($5, requirio_visita),
			respuesta_parcial = COALESCE($6, respuesta_parcial)
		WHERE id = $1 AND fecha_radicado_respuesta IS NULL`
	tag, err := r.q.Exec(ctx, q, id, resp.RespondedAt, resp.DiasRespuesta,
		resp.NumeroRespuesta, resp.RequirioVisita, resp.Parcial)
	if err != nil {
		return fmt.Errorf("marcar radicado respondido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyResponded
	}
	return nil
}

func (r *RadicadoRepo) RegisterPartialResponse(ctx context.Context, id string, resp entity.PartialResponse) error {
	q := `
		UPDATE ` + r.table + ` SET
			numero_radicado_respuesta = $2,
			requirio_visita = $3,
			respuesta_parcial = 'SI',
			fecha_limite_respuesta = $4,
			fecha_radicado_respuesta = NULL,
			alerta = false
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, q, id, resp.NumeroRespuesta, resp.RequirioVisita, resp.NuevaFechaLimite)
	if err != nil {
		return fmt.Errorf("registrar respuesta parcial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AverageResponseDays AVG sobre NUMERIC, escaneado con el codec de shopspring/decimal.
func (r *RadicadoRepo) AverageResponseDays(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	q := `
		SELECT COALESCE(AVG(dias_respuesta)::numeric(10,2), 0)
		FROM ` + r.table + `
		WHERE fecha_radicado BETWEEN $1 AND $2 AND dias_respuesta IS NOT NULL`
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, q, from, to).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("promedio dias_respuesta: %w", err)
	}
	return avg, nil
}

func (r *RadicadoRepo) queryList(ctx context.Context, q string, args ...any) ([]*entity.Radicado, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*entity.Radicado
	for rows.Next() {
		rad, err := scanRadicado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan radicado: %w", err)
		}
		list = append(list, rad)
	}
	return list, rows.Err()
}

func scanRadicado(s pgxScanner) (*entity.Radicado, error) {
	var rad entity.Radicado
	var tema, canal, remitente, solicitud, conclusion *string
	var numProrroga, numRespuesta, parcial *string
	var requirioVisita *bool
	var dias *int32
	err := s.Scan(
		&rad.ID, &rad.Funcionario, &rad.NumeroRadicado,
		&rad.FechaRadicado, &rad.FechaAsignacion, &rad.FechaLimiteRespuesta,
		&tema, &canal, &remitente, &solicitud, &conclusion,
		&numProrroga, &rad.FechaSolicitudProrroga,
		&numRespuesta, &rad.FechaRadicadoRespuesta, &dias,
		&rad.Alerta, &parcial, &requirioVisita, &rad.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rad.Tema = deref(tema)
	rad.Canal = deref(canal)
	rad.Remitente = deref(remitente)
	rad.Solicitud = deref(solicitud)
	rad.ConclusionRespuesta = deref(conclusion)
	rad.NumeroRadicadoProrroga = deref(numProrroga)
	rad.NumeroRadicadoRespuesta = deref(numRespuesta)
	rad.RespuestaParcial = deref(parcial)
	rad.RequirioVisita = requirioVisita != nil && *requirioVisita
	if dias != nil {
		d := int(*dias)
		rad.DiasRespuesta = &d
	}
	return &rad, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
