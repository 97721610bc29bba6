package dto

import "github.com/shopspring/decimal"

// CanalCountDTO radicados por canal normalizado.
type CanalCountDTO struct {
	Canal string `json:"canal"`
	Total int    `json:"total"`
}

// Estados del listado mensual.
const (
	EstadoMesRespondido = "RESPONDIDO"
	EstadoMesPendiente  = "PENDIENTE"
	EstadoMesAlerta     = "ALERTA"
)

// ResumenItemDTO radicado del mes con su estado.
type ResumenItemDTO struct {
	ID             string `json:"id"`
	NumeroRadicado string `json:"numero_radicado"`
	Tema           string `json:"tema"`
	Fecha          string `json:"fecha"`
	Estado         string `json:"estado"`
}

// ResumenMensualDTO resumen de los radicados ingresados en el mes.
//
// En alerta se recalcula en memoria con la política vigente; no depende de la columna alerta.
type ResumenMensualDTO struct {
	Mes                   string           `json:"mes"` // "Enero 2025"
	Desde                 string           `json:"desde"`
	Hasta                 string           `json:"hasta"`
	TotalMes              int              `json:"total_mes"`
	RespondidosMes        int              `json:"respondidos_mes"`
	PendientesMes         int              `json:"pendientes_mes"`
	AlertasMes            int              `json:"alertas_mes"`
	PendientesTotal       int              `json:"pendientes_total"`
	TasaRespuesta         decimal.Decimal  `json:"tasa_respuesta"` // porcentaje 0-100
	PromedioDiasRespuesta decimal.Decimal  `json:"promedio_dias_respuesta"`
	PorCanal              []CanalCountDTO  `json:"por_canal"`
	Lista                 []ResumenItemDTO `json:"lista"`
}
