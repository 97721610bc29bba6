package repository

import (
	"context"
	"time"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RadicadoRepository puerto de persistencia de radicados.
type RadicadoRepository interface {
	Create(ctx context.Context, r *entity.Radicado) error
	GetByID(ctx context.Context, id string) (*entity.Radicado, error)
	List(ctx context.Context, f entity.RadicadoFilter) ([]*entity.Radicado, int, error)
	// ListPending devuelve los radicados sin fecha de respuesta.
	ListPending(ctx context.Context) ([]*entity.Radicado, error)
	ListByIntakeRange(ctx context.Context, from, to time.Time) ([]*entity.Radicado, error)
	CountPending(ctx context.Context) (int, error)
	// CountByChannel conteo de todos los radicados por valor crudo de canal ("" si es NULL).
	CountByChannel(ctx context.Context) (map[string]int, error)
	// SetAlertFlag actualiza alerta=value para todos los ids en una sola sentencia.
	SetAlertFlag(ctx context.Context, ids []string, value bool) (int64, error)
	// MarkResponded cierra el radicado; devuelve domain.ErrAlreadyResponded si ya tenía respuesta.
	MarkResponded(ctx context.Context, id string, resp entity.CompleteResponse) error
	RegisterPartialResponse(ctx context.Context, id string, resp entity.PartialResponse) error
	// AverageResponseDays promedio de dias_respuesta de los radicados respondidos del rango.
	AverageResponseDays(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
