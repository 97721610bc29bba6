// Package pdf genera el reporte imprimible del tablero de alertas.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + entidad     │  Fecha de generación         │
//	│  ──────────────────────────────────────────────────────────  │
//	│  RESUMEN: Vencidos | Próximos | En alerta | Pendientes       │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Radicado | Funcionario | Tema | Límite | Restantes   │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/ports"
)

var _ ports.AlertReportGenerator = (*AlertReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 185, Green: 28, Blue: 28}
	colorWarning  = &props.Color{Red: 180, Green: 110, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// AlertReportGenerator implementa ports.AlertReportGenerator usando Maroto v2.
type AlertReportGenerator struct {
	entity string
	loc    *time.Location
}

// NewAlertReportGenerator construye el generador. entity aparece en el encabezado.
func NewAlertReportGenerator(entity string, loc *time.Location) *AlertReportGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &AlertReportGenerator{entity: entity, loc: loc}
}

// GenerateAlertReport genera el PDF y devuelve sus bytes.
func (g *AlertReportGenerator) GenerateAlertReport(_ context.Context, report *dto.AlertsResponse) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de alertas de radicados", true).
		WithAuthor(g.entity, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(report.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Alertas) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New(
			"No hay radicados en alerta.",
			props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray},
		))))
	}
	for _, a := range report.Alertas {
		m.AddRows(alertRow(a))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *AlertReportGenerator) headerRow(generated time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE ALERTAS DE RADICADOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.entity, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generated.In(g.loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func statsRow(s dto.AlertStatsDTO) core.Row {
	stat := func(label string, n int, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(strconv.Itoa(n), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6, Color: c,
			}),
		)
	}
	return row.New(16).Add(
		stat("Vencidos", s.Vencidos, colorCritical),
		stat("Próximos a vencer", s.ProximosAVencer, colorWarning),
		stat("En alerta", s.EnAlerta, colorPrimary),
		stat("Total pendientes", s.TotalPendientes, colorGray),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Radicado", 2, align.Left),
		h("Funcionario", 2, align.Left),
		h("Tema", 3, align.Left),
		h("Remitente", 2, align.Left),
		h("Fecha límite", 1, align.Center),
		h("Restantes", 2, align.Right),
	)
}

func alertRow(a dto.AlertItemDTO) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	limite := a.FechaLimite
	if a.FechaLimiteCalculada {
		limite += "*"
	}
	return row.New(7).Add(
		cell(a.NumeroRadicado, 2, align.Left),
		cell(a.Funcionario, 2, align.Left),
		cell(nonEmpty(a.Tema, "-"), 3, align.Left),
		cell(nonEmpty(a.Remitente, "-"), 2, align.Left),
		cell(limite, 1, align.Center),
		col.New(2).Add(text.New(a.DiasRestantesTexto, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: levelColor(a.Nivel),
		})),
	)
}

func levelColor(nivel string) *props.Color {
	switch nivel {
	case "critical":
		return colorCritical
	case "warning":
		return colorWarning
	default:
		return colorGray
	}
}

// nonEmpty devuelve s o fallback si s está vacío.
func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
