package repository

import "github.com/wsuarezb/toolstock-api/internal/domain/entity"

// Puertos del catálogo. Todos los "Add" son idempotentes por nombre: insertar
// un nombre existente es un no-op, no un error. La baja es desactivación, no
// borrado, para que el historial de movimientos siga siendo legible.

// ResponsibleRepository puerto de persistencia para responsables.
type ResponsibleRepository interface {
	Add(r *entity.Responsible) error
	Rename(name, newName string) error
	Deactivate(name string) error
	List(activeOnly bool) ([]*entity.Responsible, error)
}

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Add(c *entity.Client) error
	Rename(name, newName string) error
	Deactivate(name string) error
	List(activeOnly bool) ([]*entity.Client, error)
}

// WellRepository puerto de persistencia para pozos.
type WellRepository interface {
	Add(w *entity.Well) error
	Update(name string, w *entity.Well) error
	Deactivate(name string) error
	List(activeOnly bool) ([]*entity.Well, error)
	// ListWithCoordinates pozos con latitud y longitud presentes (vista de mapa).
	ListWithCoordinates() ([]*entity.Well, error)
}

// ToolTypeRepository puerto de persistencia para la taxonomía de tipos.
type ToolTypeRepository interface {
	// Upsert crea o actualiza por nombre (el editar del administrador).
	Upsert(tt *entity.ToolType) error
	Deactivate(name string) error
	List() ([]*entity.ToolType, error)
	ListByApplication(app entity.Application) ([]*entity.ToolType, error)
}

// EquivalenceRepository puerto para el cruce de part numbers proveedor↔cliente.
type EquivalenceRepository interface {
	Upsert(eq *entity.PartNumberEquivalence) error
	GetBySupplierPN(supplierPN string) (*entity.PartNumberEquivalence, error)
	List() ([]*entity.PartNumberEquivalence, error)
	Delete(supplierPN string) error
}
