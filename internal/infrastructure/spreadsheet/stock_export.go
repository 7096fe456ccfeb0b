// Package spreadsheet exporta el libro de stock a XLSX con excelize.
package spreadsheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/activos-api/internal/application/inventory"
)

const (
	sheetStock        = "Stock"
	sheetAvailability = "Disponibilidad"
)

var _ inventory.StockSheetExporter = (*ExcelExporter)(nil)

var (
	stockHeaders = []string{
		"ID", "Ítem", "Ubicación", "Cantidad", "Precio unitario", "Precio total",
		"Baja asociada", "Observaciones", "Creado",
	}
	availabilityHeaders = []string{"Ítem", "Stock total", "En componentes", "Disponible"}
)

// ExcelExporter implementa inventory.StockSheetExporter.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ExportStock genera un libro con dos hojas: el detalle de entradas y la disponibilidad por ítem.
func (e *ExcelExporter) ExportStock(_ context.Context, rows []inventory.StockSheetRow, availability []inventory.AvailabilitySheetRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo numérico: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheetStock); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetAvailability); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	if err := writeHeaders(f, sheetStock, stockHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, r := range rows {
		s := r.Entry
		dispose := ""
		if s.DisposeID != nil {
			dispose = fmt.Sprintf("%d", *s.DisposeID)
		}
		values := []any{
			s.ID, r.ItemName, r.LocationName, s.Quantity,
			s.UnitPrice.InexactFloat64(), s.TotalPrice.InexactFloat64(),
			dispose, s.Remarks, s.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := writeRow(f, sheetStock, i+2, values); err != nil {
			return nil, err
		}
	}
	if len(rows) > 0 {
		last := len(rows) + 1
		if err := f.SetCellStyle(sheetStock, "E2", fmt.Sprintf("F%d", last), moneyStyle); err != nil {
			return nil, fmt.Errorf("xlsx: estilo de importes: %w", err)
		}
	}

	if err := writeHeaders(f, sheetAvailability, availabilityHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, a := range availability {
		values := []any{a.ItemName, a.TotalStock, a.UsedInComponents, a.AvailableStock}
		if err := writeRow(f, sheetAvailability, i+2, values); err != nil {
			return nil, err
		}
	}

	for _, sheet := range []string{sheetStock, sheetAvailability} {
		_ = f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	}
	_ = f.SetColWidth(sheetStock, "B", "C", 28)
	_ = f.SetColWidth(sheetStock, "H", "H", 36)
	_ = f.SetColWidth(sheetAvailability, "A", "A", 32)
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsx: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("xlsx: fila %d de %s: %w", rowNum, sheet, err)
		}
	}
	return nil
}
