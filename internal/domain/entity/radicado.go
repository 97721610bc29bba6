package entity

import "time"

// Canales de recepción ofrecidos en el formulario de radicación.
var Canales = []string{
	"Correo Electrónico",
	"Físico",
	"Plataforma Digital",
	"Teléfono",
	"Fax",
	"Ventanilla Única",
}

// Valores de respuesta_parcial.
const (
	RespuestaParcialSi = "SI"
	RespuestaParcialNo = "NO"
)

// Radicado documento entrante registrado en la oficina.
// Todas las fechas son fechas civiles (sin hora); nil significa "sin valor".
type Radicado struct {
	ID                      string
	Funcionario             string
	NumeroRadicado          string
	FechaRadicado           *time.Time
	FechaAsignacion         *time.Time
	FechaLimiteRespuesta    *time.Time
	Tema                    string
	Canal                   string
	Remitente               string
	Solicitud               string
	ConclusionRespuesta     string
	NumeroRadicadoProrroga  string
	FechaSolicitudProrroga  *time.Time
	NumeroRadicadoRespuesta string
	FechaRadicadoRespuesta  *time.Time
	DiasRespuesta           *int
	Alerta                  bool
	RespuestaParcial        string // SI | NO | ""
	RequirioVisita          bool
	CreatedAt               time.Time
}

// Responded indica si el radicado ya tiene respuesta definitiva.
func (r *Radicado) Responded() bool {
	return r.FechaRadicadoRespuesta != nil
}

// IntakeDate fecha desde la que corre el plazo: asignación y, en su defecto, radicación.
func (r *Radicado) IntakeDate() *time.Time {
	if r.FechaAsignacion != nil {
		return r.FechaAsignacion
	}
	return r.FechaRadicado
}

// Estados usados para filtrar listados.
const (
	EstadoTodos       = "todos"
	EstadoPendientes  = "pendientes"
	EstadoRespondidos = "respondidos"
	EstadoAlertas     = "alertas"
)

// RadicadoFilter criterios de búsqueda del listado.
type RadicadoFilter struct {
	Search string // numero, funcionario, tema o remitente
	Estado string
	Limit  int
	Offset int
}

// AlertFlagUpdate resultado de sincronizar la bandera alerta.
type AlertFlagUpdate struct {
	Raised  int64
	Cleared int64
}

// CompleteResponse cierre definitivo de un radicado.
// Los punteros nil conservan el valor almacenado.
type CompleteResponse struct {
	RespondedAt     time.Time
	DiasRespuesta   *int
	NumeroRespuesta *string
	RequirioVisita  *bool
	Parcial         *string
}

// PartialResponse respuesta parcial: el radicado sigue abierto con un nuevo plazo.
type PartialResponse struct {
	NumeroRespuesta  string
	RequirioVisita   bool
	NuevaFechaLimite time.Time
}
