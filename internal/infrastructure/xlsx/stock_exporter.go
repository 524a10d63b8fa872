// Package xlsx exporta la tabla de stok (ya filtrada y ordenada) a una hoja de cálculo.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/sitta-api/internal/application/dto"
)

// SheetName hoja donde se escribe la tabla.
const SheetName = "Stok"

var headers = []interface{}{
	"Kode", "Judul", "Kategori", "UPBJJ", "Lokasi Rak", "Harga", "Qty", "Safety", "Status",
}

// StockExporter escribe la proyección de stok con excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// Write escribe el libro .xlsx en w. Las filas se exportan en el orden recibido.
func (e *StockExporter) Write(w io.Writer, rows []dto.StockRowResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("xlsx: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "I1", bold); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Code, r.Title, r.Category, r.Region, r.ShelfLocation,
			r.Price.InexactFloat64(), r.Quantity, r.SafetyThreshold, r.StatusLabel,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if len(rows) > 0 {
		last := fmt.Sprintf("F%d", len(rows)+1)
		if err := f.SetCellStyle(SheetName, "F2", last, money); err != nil {
			return fmt.Errorf("xlsx: estilo harga: %w", err)
		}
	}
	if err := f.SetColWidth(SheetName, "B", "B", 36); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", "E", 16); err != nil {
		return err
	}
	return f.Write(w)
}
