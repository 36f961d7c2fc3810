// Package excel exporta el reporte consolidado de stock como libro .xlsx.
package excel

import (
	"fmt"

	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Stock"

// StockExporter implementa reports.Exporter con excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// StockWorkbook genera el libro con una hoja de stock por herramienta.
func (e *StockExporter) StockWorkbook(rows []dto.StockReportRowResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	headers := []string{"Part Number", "Serial", "Descripción", "Bodega", "Campo", "Instalado", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %s: %w", h, err)
		}
	}

	for i, r := range rows {
		serial := "N/A"
		if r.SerialNumber != nil && *r.SerialNumber != "" {
			serial = *r.SerialNumber
		}
		values := []interface{}{
			r.PartNumber,
			serial,
			r.Description,
			r.WarehouseStock,
			r.FieldStock,
			r.InstalledStock,
			r.WarehouseStock + r.FieldStock + r.InstalledStock,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
