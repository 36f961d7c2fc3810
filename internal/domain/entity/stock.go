package entity

// StockLine una línea de stock derivado: herramienta con cantidad positiva en
// una ubicación. La cantidad no se almacena nunca; se calcula agregando el
// libro de movimientos.
type StockLine struct {
	ToolID       string
	DisplayName  string
	PartNumber   string
	SerialNumber *string
	Category     ToolCategory
	Quantity     int
	// Well pozo al que pertenece la línea cuando la ubicación es Field o
	// Installed; nil para stock de bodega.
	Well *string
}

// StockReportRow fila de los reportes agregados de stock (sin desglose por pozo).
type StockReportRow struct {
	PartNumber     string
	SerialNumber   *string
	Description    string
	WarehouseStock int
	FieldStock     int
	InstalledStock int
}
