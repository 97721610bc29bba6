package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canales normalizados del resumen.
const (
	CanalCorreo     = "Correo electrónico"
	CanalTelefono   = "Teléfono"
	CanalWhatsApp   = "WhatsApp"
	CanalPresencial = "Presencial"
	CanalWeb        = "Web"
	CanalOficio     = "Oficio"
	CanalOtro       = "Otro"
)

var canalRules = []struct {
	keywords []string
	canal    string
}{
	{[]string{"correo", "email"}, CanalCorreo},
	{[]string{"telefono", "tel"}, CanalTelefono},
	{[]string{"whatsapp", "wasap"}, CanalWhatsApp},
	{[]string{"presencial", "oficina", "ventanilla"}, CanalPresencial},
	{[]string{"web", "formulario"}, CanalWeb},
	{[]string{"oficio", "memorando"}, CanalOficio},
}

// NormalizeCanal agrupa variantes de escritura de un canal (sin tildes ni mayúsculas).
// Un valor no reconocido se devuelve tal cual, sin espacios extremos.
func NormalizeCanal(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CanalOtro
	}
	key := strings.ToLower(foldAccents(trimmed))
	for _, rule := range canalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(key, kw) {
				return rule.canal
			}
		}
	}
	return trimmed
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
