// Package radicados contiene los casos de uso de radicación y respuesta de documentos.
package radicados

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/domain/repository"
	"github.com/jhoicas/radicados-api/pkg/dates"
)

const exportPageSize = 500

// RadicadoUseCase radicación, consulta y respuesta de documentos.
type RadicadoUseCase struct {
	repo   repository.RadicadoRepository
	cal    *calendar.Calendar
	policy calendar.Policy
	log    zerolog.Logger
}

// NewRadicadoUseCase construye el caso de uso.
func NewRadicadoUseCase(repo repository.RadicadoRepository, cal *calendar.Calendar, policy calendar.Policy, log zerolog.Logger) *RadicadoUseCase {
	return &RadicadoUseCase{repo: repo, cal: cal, policy: policy, log: log}
}

// Create registra un documento. Con fecha de asignación se proyecta la fecha límite estándar.
func (uc *RadicadoUseCase) Create(ctx context.Context, in dto.CreateRadicadoRequest) (*dto.RadicadoResponse, error) {
	loc := uc.cal.Location()

	fechaRadicado := uc.cal.Today()
	if in.FechaRadicado != "" {
		d, err := dates.Parse(in.FechaRadicado, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		fechaRadicado = d
	}
	fechaAsignacion, err := dates.ParseOptional(in.FechaAsignacion, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var limite *time.Time
	if fechaAsignacion != nil {
		d, err := uc.cal.AddBusinessDays(ctx, *fechaAsignacion, uc.policy.ResponseDays)
		if err != nil {
			return nil, fmt.Errorf("proyectar fecha límite: %w", err)
		}
		limite = &d
	}

	r := &entity.Radicado{
		ID:                   uuid.New().String(),
		Funcionario:          strings.TrimSpace(in.Funcionario),
		NumeroRadicado:       strings.TrimSpace(in.NumeroRadicado),
		FechaRadicado:        &fechaRadicado,
		FechaAsignacion:      fechaAsignacion,
		FechaLimiteRespuesta: limite,
		Tema:                 strings.TrimSpace(in.Tema),
		Canal:                strings.TrimSpace(in.Canal),
		Remitente:            strings.TrimSpace(in.Remitente),
		Solicitud:            strings.TrimSpace(in.Solicitud),
		CreatedAt:            time.Now(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	uc.log.Info().Str("radicado_id", r.ID).Str("numero", r.NumeroRadicado).Msg("radicado registrado")
	return ToRadicadoResponse(r), nil
}

// Get devuelve el detalle de un radicado.
func (uc *RadicadoUseCase) Get(ctx context.Context, id string) (*dto.RadicadoResponse, error) {
	r, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRadicadoResponse(r), nil
}

// List listado paginado con búsqueda y filtro por estado.
func (uc *RadicadoUseCase) List(ctx context.Context, in dto.RadicadoListRequest) (*dto.RadicadoListResponse, error) {
	in.DefaultPage()
	if in.Limit > 100 {
		in.Limit = 100
	}
	list, total, err := uc.repo.List(ctx, entity.RadicadoFilter{
		Search: in.Search, Estado: in.Estado, Limit: in.Limit, Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.RadicadoResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToRadicadoResponse(r))
	}
	return &dto.RadicadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListAll recorre todas las páginas del filtro (exportaciones).
func (uc *RadicadoUseCase) ListAll(ctx context.Context, search, estado string) ([]dto.RadicadoResponse, error) {
	var out []dto.RadicadoResponse
	for offset := 0; ; offset += exportPageSize {
		list, total, err := uc.repo.List(ctx, entity.RadicadoFilter{
			Search: search, Estado: estado, Limit: exportPageSize, Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		for _, r := range list {
			out = append(out, *ToRadicadoResponse(r))
		}
		if len(list) < exportPageSize || offset+len(list) >= total {
			return out, nil
		}
	}
}

// MarkResponded cierra el radicado con fecha de hoy.
func (uc *RadicadoUseCase) MarkResponded(ctx context.Context, id string) (*dto.RadicadoResponse, error) {
	r, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Responded() {
		return nil, domain.ErrAlreadyResponded
	}
	today := uc.cal.Today()
	if err := uc.repo.MarkResponded(ctx, id, entity.CompleteResponse{
		RespondedAt:   today,
		DiasRespuesta: uc.elapsed(ctx, r, today),
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("radicado_id", id).Msg("radicado marcado como respondido")
	return uc.Get(ctx, id)
}

// Respond registra una respuesta completa (cierra el radicado) o parcial (nuevo plazo).
func (uc *RadicadoUseCase) Respond(ctx context.Context, id string, in dto.RespondRequest) (*dto.RespondResponse, error) {
	fecha, err := dates.Parse(in.FechaRespuesta, uc.cal.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	numero := strings.TrimSpace(in.NumeroRadicadoRespuesta)
	if numero == "" {
		return nil, fmt.Errorf("%w: número de radicado de respuesta requerido", domain.ErrInvalidInput)
	}

	r, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Responded() {
		return nil, domain.ErrAlreadyResponded
	}

	switch in.Tipo {
	case dto.TipoRespuestaCompleta:
		visita := in.RequirioVisita
		parcial := entity.RespuestaParcialNo
		err = uc.repo.MarkResponded(ctx, id, entity.CompleteResponse{
			RespondedAt:     fecha,
			DiasRespuesta:   uc.elapsed(ctx, r, fecha),
			NumeroRespuesta: &numero,
			RequirioVisita:  &visita,
			Parcial:         &parcial,
		})
		if err != nil {
			return nil, err
		}
		uc.log.Info().Str("radicado_id", id).Str("respuesta", numero).Msg("respuesta completa registrada")
		out, err := uc.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &dto.RespondResponse{Radicado: *out}, nil

	case dto.TipoRespuestaParcial:
		nueva, err := uc.cal.AddBusinessDays(ctx, fecha, uc.policy.PartialResponseDays)
		if err != nil {
			return nil, fmt.Errorf("proyectar nueva fecha límite: %w", err)
		}
		err = uc.repo.RegisterPartialResponse(ctx, id, entity.PartialResponse{
			NumeroRespuesta:  numero,
			RequirioVisita:   in.RequirioVisita,
			NuevaFechaLimite: nueva,
		})
		if err != nil {
			return nil, err
		}
		uc.log.Info().Str("radicado_id", id).Str("nueva_fecha_limite", dates.Key(nueva)).Msg("respuesta parcial registrada")
		out, err := uc.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &dto.RespondResponse{Radicado: *out, NuevaFechaLimite: dates.FormatISO(&nueva)}, nil

	default:
		return nil, fmt.Errorf("%w: tipo de respuesta %q", domain.ErrInvalidInput, in.Tipo)
	}
}

func (uc *RadicadoUseCase) find(ctx context.Context, id string) (*entity.Radicado, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// elapsed días hábiles entre la radicación y la respuesta; nil sin fecha de radicación.
func (uc *RadicadoUseCase) elapsed(ctx context.Context, r *entity.Radicado, respondedAt time.Time) *int {
	if r.FechaRadicado == nil {
		return nil
	}
	n := uc.cal.CountBusinessDays(ctx, *r.FechaRadicado, respondedAt)
	return &n
}

// Estados mostrados en listados y exportaciones.
const (
	EstadoRespondido = "Respondido"
	EstadoAlerta     = "Alerta"
	EstadoPendiente  = "Pendiente"
)

// Estado etiqueta de estado según respuesta y bandera de alerta almacenada.
func Estado(r *entity.Radicado) string {
	switch {
	case r.Responded():
		return EstadoRespondido
	case r.Alerta:
		return EstadoAlerta
	default:
		return EstadoPendiente
	}
}

// ToRadicadoResponse mapea la entidad al DTO de salida.
func ToRadicadoResponse(r *entity.Radicado) *dto.RadicadoResponse {
	if r == nil {
		return nil
	}
	return &dto.RadicadoResponse{
		ID:                      r.ID,
		Funcionario:             r.Funcionario,
		NumeroRadicado:          r.NumeroRadicado,
		FechaRadicado:           dates.FormatISO(r.FechaRadicado),
		FechaAsignacion:         dates.FormatISO(r.FechaAsignacion),
		FechaLimiteRespuesta:    dates.FormatISO(r.FechaLimiteRespuesta),
		Tema:                    r.Tema,
		Canal:                   r.Canal,
		Remitente:               r.Remitente,
		Solicitud:               r.Solicitud,
		ConclusionRespuesta:     r.ConclusionRespuesta,
		NumeroRadicadoProrroga:  r.NumeroRadicadoProrroga,
		FechaSolicitudProrroga:  dates.FormatISO(r.FechaSolicitudProrroga),
		NumeroRadicadoRespuesta: r.NumeroRadicadoRespuesta,
		FechaRadicadoRespuesta:  dates.FormatISO(r.FechaRadicadoRespuesta),
		DiasRespuesta:           r.DiasRespuesta,
		Alerta:                  r.Alerta,
		RespuestaParcial:        r.RespuestaParcial,
		RequirioVisita:          r.RequirioVisita,
		Estado:                  Estado(r),
		CreatedAt:               r.CreatedAt,
	}
}
