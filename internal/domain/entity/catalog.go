package entity

// Entidades de catálogo: registros de referencia con nombre único y bandera
// de activo. Los movimientos las referencian por nombre (no por FK), de modo
// que el historial sigue siendo legible después de una desactivación.

// Responsible persona responsable de un movimiento.
type Responsible struct {
	ID       string
	Name     string
	IsActive bool
}

// Client cliente destinatario de despachos.
type Client struct {
	ID       string
	Name     string
	IsActive bool
}

// Well pozo al que se despachan e instalan herramientas. Las coordenadas y los
// atributos descriptivos solo los consume la vista de mapa.
type Well struct {
	ID             string
	Name           string
	Latitude       *string
	Longitude      *string
	WellTrajectory *string
	WellFluid      *string
	IsActive       bool
}

// ToolType tipo específico dentro de la taxonomía administrada, asociado a una aplicación.
type ToolType struct {
	ID          string
	Name        string
	Application Application
	IsActive    bool
}

// PartNumberEquivalence cruce proveedor↔cliente de part numbers, usado en la
// nota de entrega para mostrar la referencia del cliente.
type PartNumberEquivalence struct {
	ID                string
	SupplierPN        string
	ClientPN          string
	ClientDescription string
}
