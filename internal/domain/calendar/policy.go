package calendar

// AlertLevel nivel de urgencia de un radicado pendiente.
type AlertLevel string

const (
	LevelCritical AlertLevel = "critical"
	LevelWarning  AlertLevel = "warning"
	LevelInfo     AlertLevel = "info"
	LevelNone     AlertLevel = "none"
)

// Policy plazos y umbrales de respuesta expresados en días hábiles.
type Policy struct {
	ResponseDays        int
	PartialResponseDays int
	AlertThreshold      int
	CriticalDays        int
	WarningDays         int
}

// DefaultPolicy plazos vigentes: 16 días para responder, 15 tras respuesta parcial,
// alerta desde 10 días restantes.
func DefaultPolicy() Policy {
	return Policy{
		ResponseDays:        16,
		PartialResponseDays: 15,
		AlertThreshold:      10,
		CriticalDays:        3,
		WarningDays:         7,
	}
}

// Classify asigna el nivel según los días hábiles restantes. Vencidos (<= 0) son críticos.
func (p Policy) Classify(remaining int) AlertLevel {
	switch {
	case remaining <= p.CriticalDays:
		return LevelCritical
	case remaining <= p.WarningDays:
		return LevelWarning
	case remaining <= p.AlertThreshold:
		return LevelInfo
	default:
		return LevelNone
	}
}

// ShouldAlert indica si el radicado debe quedar marcado con alerta.
func (p Policy) ShouldAlert(remaining int) bool {
	return remaining <= p.AlertThreshold
}
