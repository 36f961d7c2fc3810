package repository

import "github.com/wsuarezb/toolstock-api/internal/domain/entity"

// ToolRepository define el puerto de persistencia del registro de herramientas.
type ToolRepository interface {
	Create(tool *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	// GetByIdentity busca por la identidad (part_number, serial_number);
	// serial nulo agrupa el stock fungible.
	GetByIdentity(partNumber string, serialNumber *string) (*entity.Tool, error)
	List() ([]*entity.Tool, error)
	Deactivate(id string) error
	// Delete borra la herramienta; los movimientos deben borrarse antes
	// (cascada manejada por la operación administrativa).
	Delete(id string) error
	DeleteAll() error
}
