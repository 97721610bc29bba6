package dto

import "time"

// AlertStatsDTO contadores del tablero de alertas.
type AlertStatsDTO struct {
	Vencidos        int `json:"vencidos"`
	ProximosAVencer int `json:"proximos_a_vencer"`
	EnAlerta        int `json:"en_alerta"`
	TotalPendientes int `json:"total_pendientes"`
}

// AlertItemDTO radicado que requiere atención.
type AlertItemDTO struct {
	ID                   string  `json:"id"`
	NumeroRadicado       string  `json:"numero_radicado"`
	Funcionario          string  `json:"funcionario"`
	Tema                 string  `json:"tema,omitempty"`
	Remitente            string  `json:"remitente,omitempty"`
	Canal                string  `json:"canal,omitempty"`
	FechaRadicado        *string `json:"fecha_radicado"`
	FechaLimite          string  `json:"fecha_limite"`
	FechaLimiteCalculada bool    `json:"fecha_limite_calculada"`
	DiasRestantes        int     `json:"dias_restantes"`
	DiasRestantesTexto   string  `json:"dias_restantes_texto"`
	Nivel                string  `json:"nivel"` // critical | warning | info
}

// AlertSyncDTO resultado de escribir la bandera alerta en la base de datos.
type AlertSyncDTO struct {
	Attempted bool   `json:"intentada"`
	OK        bool   `json:"ok"`
	Raised    int64  `json:"marcados"`
	Cleared   int64  `json:"desmarcados"`
	Error     string `json:"error,omitempty"`
}

// AlertsResponse tablero de alertas.
type AlertsResponse struct {
	Stats       AlertStatsDTO  `json:"stats"`
	Alertas     []AlertItemDTO `json:"alertas"`
	Sync        AlertSyncDTO   `json:"sync"`
	GeneratedAt time.Time      `json:"generado_en"`
}
