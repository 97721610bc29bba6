package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/infrastructure/pdf"
)

func TestGenerateAlertReport_GeneraPDF(t *testing.T) {
	g := pdf.NewAlertReportGenerator("Alcaldía de Prueba", time.UTC)
	report := &dto.AlertsResponse{
		Stats: dto.AlertStatsDTO{Vencidos: 1, ProximosAVencer: 1, EnAlerta: 2, TotalPendientes: 4},
		Alertas: []dto.AlertItemDTO{
			{NumeroRadicado: "R-1", Funcionario: "Ana", FechaLimite: "2025-01-10", DiasRestantesTexto: "Vencido", Nivel: "critical"},
			{NumeroRadicado: "R-2", Funcionario: "Luis", Tema: "Licencia", FechaLimite: "2025-01-28",
				FechaLimiteCalculada: true, DiasRestantes: 6, DiasRestantesTexto: "6 días hábiles", Nivel: "warning"},
		},
		GeneratedAt: time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
	}

	out, err := g.GenerateAlertReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateAlertReport_SinAlertas(t *testing.T) {
	out, err := pdf.NewAlertReportGenerator("Alcaldía", nil).GenerateAlertReport(context.Background(), &dto.AlertsResponse{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateAlertReport_ReporteNil(t *testing.T) {
	_, err := pdf.NewAlertReportGenerator("Alcaldía", nil).GenerateAlertReport(context.Background(), nil)
	assert.Error(t, err)
}
