package repository

import (
	"time"

	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
)

// HistoryRow fila del historial de movimientos con la identidad de la herramienta.
type HistoryRow struct {
	Date         time.Time
	Type         entity.MovementType
	PartNumber   string
	SerialNumber *string
	Quantity     int
	Location     entity.Location
	Responsible  string
	SalesOrder   *string
	Well         *string
}

// SearchFilter filtros exactos de la búsqueda de inventario. El término libre
// (part number / serial / descripción) lo aplica la capa de aplicación con
// normalización de acentos; aquí solo viven los filtros que sí resuelve SQL.
type SearchFilter struct {
	SalesOrder *string
	Well       *string
}

// SearchRow resultado de búsqueda: herramienta + datos del movimiento que la ancla.
type SearchRow struct {
	ToolID       string
	PartNumber   string
	SerialNumber *string
	Description  string
	SpecificType string
	Location     entity.Location
	Date         time.Time
	Well         *string
	SalesOrder   *string
}

// MovementRepository define el puerto del libro de movimientos. El libro es
// append-only: no existen update ni delete individuales, solo la purga masiva
// y el borrado en cascada por herramienta.
type MovementRepository interface {
	Append(m *entity.Movement) error
	ListByTool(toolID string) ([]*entity.Movement, error)
	// ExistsImportation detecta la doble reserva de una herramienta
	// serializada bajo la misma orden de venta.
	ExistsImportation(toolID, salesOrder string) (bool, error)
	History(from, to time.Time) ([]*HistoryRow, error)
	Search(f SearchFilter) ([]*SearchRow, error)
	DeleteByTool(toolID string) error
	DeleteAll() error
}
