package dto

// BusinessDaysResponse conteo de días hábiles en (desde, hasta].
type BusinessDaysResponse struct {
	Desde       string `json:"desde"`
	Hasta       string `json:"hasta"`
	DiasHabiles int    `json:"dias_habiles"`
}

// DeadlineResponse fecha límite proyectada.
type DeadlineResponse struct {
	Desde       string `json:"desde"`
	DiasHabiles int    `json:"dias_habiles"`
	FechaLimite string `json:"fecha_limite"`
}

// HolidayDTO festivo.
type HolidayDTO struct {
	Fecha  string `json:"fecha"`
	Nombre string `json:"nombre"`
}

// HolidayListResponse festivos de un año.
type HolidayListResponse struct {
	Anio     int          `json:"anio"`
	Festivos []HolidayDTO `json:"festivos"`
}

// UpsertHolidayRequest alta o corrección de un festivo.
type UpsertHolidayRequest struct {
	Fecha  string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Nombre string `json:"nombre" validate:"required,max=200"`
}
