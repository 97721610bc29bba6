// Package export serializa el listado de radicados para descarga (CSV y Excel XML).
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/ports"
	"github.com/jhoicas/radicados-api/internal/domain"
)

var _ ports.RadicadoExporter = (*Exporter)(nil)

// Namespaces de SpreadsheetML 2003 (abre en Excel y LibreOffice sin dependencias de ofimática).
const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
	nsExcel       = "urn:schemas-microsoft-com:office:excel"
)

// Headers columnas del listado exportado.
var Headers = []string{
	"Número Radicado",
	"Funcionario",
	"Fecha Radicado",
	"Fecha Límite",
	"Estado",
	"Tema",
	"Canal",
	"Remitente",
}

// utf8BOM para que Excel detecte la codificación del CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Exporter implementa ports.RadicadoExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ContentType tipo MIME de la descarga.
func (e *Exporter) ContentType(format string) string {
	switch format {
	case ports.FormatXLS:
		return "application/vnd.ms-excel"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Export serializa los radicados en el formato pedido.
func (e *Exporter) Export(_ context.Context, format string, items []dto.RadicadoResponse) ([]byte, error) {
	switch format {
	case ports.FormatCSV, "":
		return exportCSV(items)
	case ports.FormatXLS:
		return exportSpreadsheet(items)
	default:
		return nil, fmt.Errorf("%w: formato de exportación %q", domain.ErrInvalidInput, format)
	}
}

func record(r dto.RadicadoResponse) []string {
	return []string{
		r.NumeroRadicado,
		r.Funcionario,
		displayDate(r.FechaRadicado),
		displayDate(r.FechaLimiteRespuesta),
		r.Estado,
		r.Tema,
		r.Canal,
		r.Remitente,
	}
}

func exportCSV(items []dto.RadicadoResponse) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(Headers); err != nil {
		return nil, err
	}
	for _, r := range items {
		if err := w.Write(record(r)); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

func exportSpreadsheet(items []dto.RadicadoResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:o", nsOffice)
	wb.CreateAttr("xmlns:x", nsExcel)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	styles := wb.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "header")
	header.CreateElement("Font").CreateAttr("ss:Bold", "1")

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", "Radicados")
	table := ws.CreateElement("Table")

	addRow(table, Headers, "header")
	for _, r := range items {
		addRow(table, record(r), "")
	}

	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("export xls: %w", err)
	}
	return buf.Bytes(), nil
}

func addRow(table *etree.Element, values []string, style string) {
	row := table.CreateElement("Row")
	for _, v := range values {
		cell := row.CreateElement("Cell")
		if style != "" {
			cell.CreateAttr("ss:StyleID", style)
		}
		data := cell.CreateElement("Data")
		data.CreateAttr("ss:Type", "String")
		data.SetText(v)
	}
}

// displayDate YYYY-MM-DD → DD/MM/YYYY.
func displayDate(iso *string) string {
	if iso == nil || *iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", *iso)
	if err != nil {
		return *iso
	}
	return t.Format("02/01/2006")
}
