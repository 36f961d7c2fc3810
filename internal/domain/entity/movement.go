package entity

import "time"

// MovementType tipo cerrado de movimiento de inventario.
// El signo/dirección del movimiento lo define el tipo, nunca la cantidad
// almacenada (siempre positiva).
type MovementType string

const (
	MovementImportation        MovementType = "Importation"        // ingreso a bodega
	MovementReturn             MovementType = "Return"             // retorno de campo a bodega
	MovementDispatch           MovementType = "Dispatch"           // despacho de bodega a campo
	MovementInstalled          MovementType = "Installed"          // instalación en pozo
	MovementRevertInstallation MovementType = "RevertInstallation" // reversa de instalación
)

// Valid verifica que el tipo pertenezca al conjunto cerrado.
func (t MovementType) Valid() bool {
	switch t {
	case MovementImportation, MovementReturn, MovementDispatch,
		MovementInstalled, MovementRevertInstallation:
		return true
	}
	return false
}

// Location ubicación resultante de un movimiento.
type Location string

const (
	LocationWarehouse Location = "Warehouse"
	LocationField     Location = "Field"
	LocationInstalled Location = "Installed"
)

// Valid verifica que la ubicación pertenezca al conjunto cerrado.
func (l Location) Valid() bool {
	switch l {
	case LocationWarehouse, LocationField, LocationInstalled:
		return true
	}
	return false
}

// ResultingLocation devuelve la ubicación que corresponde a cada tipo de
// movimiento. La pareja (tipo, ubicación) es fija; se persiste de todas formas
// para que el historial sea legible sin decodificar el tipo.
func (t MovementType) ResultingLocation() Location {
	switch t {
	case MovementImportation, MovementReturn:
		return LocationWarehouse
	case MovementDispatch, MovementRevertInstallation:
		return LocationField
	case MovementInstalled:
		return LocationInstalled
	}
	return ""
}

// Movement es una entrada inmutable del libro de movimientos: un evento de
// inventario. Nunca se actualiza ni se borra individualmente; solo existen el
// purgado masivo y el borrado en cascada por herramienta.
type Movement struct {
	ID          string
	ToolID      string
	Type        MovementType
	Quantity    int // siempre > 0
	Location    Location
	Date        time.Time
	Responsible string
	SalesOrder  *string // solo importaciones
	Well        *string // pozo destino/origen; nil en importaciones
	CreatedAt   time.Time
}
