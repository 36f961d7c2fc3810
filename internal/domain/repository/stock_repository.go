package repository

import (
	"context"

	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
)

// StockFilter filtros de la consulta de stock por ubicación.
type StockFilter struct {
	Category     *entity.ToolCategory
	Application  *entity.Application
	SpecificType *string
	Well         *string
}

// StockRepository define el puerto de derivación de stock (solo lectura).
// Las cantidades nunca se materializan: cada consulta agrega el libro de
// movimientos con la misma aritmética del paquete domain/inventory.
type StockRepository interface {
	// StockInLocation lista las herramientas con cantidad positiva en la
	// ubicación, aplicando los filtros. En Field e Installed cada línea
	// corresponde a un par (herramienta, pozo).
	StockInLocation(ctx context.Context, loc entity.Location, f StockFilter) ([]*entity.StockLine, error)
	// Derived devuelve las tres cantidades de una herramienta, opcionalmente
	// limitadas a un pozo. Se usa dentro de la transacción de las operaciones
	// de escritura para re-validar disponibilidad.
	Derived(ctx context.Context, toolID string, well *string) (warehouse, field, installed int, err error)
	// FullStockReport stock agregado por herramienta en las tres ubicaciones.
	FullStockReport(ctx context.Context) ([]*entity.StockReportRow, error)
	// WarehouseStockReport solo las herramientas con existencia en bodega.
	WarehouseStockReport(ctx context.Context) ([]*entity.StockReportRow, error)
}
