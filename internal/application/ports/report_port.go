package ports

import (
	"context"

	"github.com/jhoicas/radicados-api/internal/application/dto"
)

// AlertReportGenerator genera el reporte imprimible del tablero de alertas.
type AlertReportGenerator interface {
	GenerateAlertReport(ctx context.Context, report *dto.AlertsResponse) ([]byte, error)
}

// Formatos de exportación del listado de radicados.
const (
	FormatCSV = "csv"
	FormatXLS = "xls"
)

// RadicadoExporter serializa un listado de radicados para descarga.
type RadicadoExporter interface {
	Export(ctx context.Context, format string, items []dto.RadicadoResponse) ([]byte, error)
	ContentType(format string) string
}
