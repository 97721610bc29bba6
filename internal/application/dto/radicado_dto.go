package dto

import "time"

// CreateRadicadoRequest entrada para radicar un documento. Fechas en formato YYYY-MM-DD.
type CreateRadicadoRequest struct {
	Funcionario     string `json:"funcionario" validate:"required,max=200"`
	NumeroRadicado  string `json:"numero_radicado" validate:"required,max=100"`
	FechaRadicado   string `json:"fecha_radicado" validate:"omitempty,datetime=2006-01-02"`
	FechaAsignacion string `json:"fecha_asignacion" validate:"omitempty,datetime=2006-01-02"`
	Tema            string `json:"tema" validate:"omitempty,max=300"`
	Canal           string `json:"canal" validate:"omitempty,canal"`
	Remitente       string `json:"remitente" validate:"omitempty,max=300"`
	Solicitud       string `json:"solicitud" validate:"omitempty,max=5000"`
}

// RadicadoResponse salida de un radicado.
type RadicadoResponse struct {
	ID                      string    `json:"id"`
	Funcionario             string    `json:"funcionario"`
	NumeroRadicado          string    `json:"numero_radicado"`
	FechaRadicado           *string   `json:"fecha_radicado"`
	FechaAsignacion         *string   `json:"fecha_asignacion"`
	FechaLimiteRespuesta    *string   `json:"fecha_limite_respuesta"`
	Tema                    string    `json:"tema,omitempty"`
	Canal                   string    `json:"canal,omitempty"`
	Remitente               string    `json:"remitente,omitempty"`
	Solicitud               string    `json:"solicitud,omitempty"`
	ConclusionRespuesta     string    `json:"conclusion_respuesta,omitempty"`
	NumeroRadicadoProrroga  string    `json:"numero_radicado_prorroga,omitempty"`
	FechaSolicitudProrroga  *string   `json:"fecha_solicitud_prorroga,omitempty"`
	NumeroRadicadoRespuesta string    `json:"numero_radicado_respuesta,omitempty"`
	FechaRadicadoRespuesta  *string   `json:"fecha_radicado_respuesta"`
	DiasRespuesta           *int      `json:"dias_respuesta"`
	Alerta                  bool      `json:"alerta"`
	RespuestaParcial        string    `json:"respuesta_parcial,omitempty"`
	RequirioVisita          bool      `json:"requirio_visita"`
	Estado                  string    `json:"estado"` // Respondido | Alerta | Pendiente
	CreatedAt               time.Time `json:"created_at"`
}

// RadicadoListRequest filtros del listado.
type RadicadoListRequest struct {
	Search string `query:"q"`
	Estado string `query:"estado" validate:"omitempty,oneof=todos pendientes respondidos alertas"`
	PageRequest
}

// RadicadoListResponse página de radicados.
type RadicadoListResponse struct {
	Items []RadicadoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// Tipos de respuesta.
const (
	TipoRespuestaCompleta = "COMPLETA"
	TipoRespuestaParcial  = "PARCIAL"
)

// RespondRequest registro de una respuesta completa o parcial.
type RespondRequest struct {
	Tipo                    string `json:"tipo" validate:"required,oneof=COMPLETA PARCIAL"`
	NumeroRadicadoRespuesta string `json:"numero_radicado_respuesta" validate:"required,max=100"`
	FechaRespuesta          string `json:"fecha_respuesta" validate:"required,datetime=2006-01-02"`
	RequirioVisita          bool   `json:"requirio_visita"`
}

// RespondResponse radicado actualizado; NuevaFechaLimite solo en respuestas parciales.
type RespondResponse struct {
	Radicado         RadicadoResponse `json:"radicado"`
	NuevaFechaLimite *string          `json:"nueva_fecha_limite,omitempty"`
}
