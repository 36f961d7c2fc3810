package entity

import "time"

// ToolCategory categoría de seguimiento de la herramienta.
type ToolCategory string

const (
	// CategoryUnique herramienta serializada, seguimiento individual (cantidad 0 o 1).
	CategoryUnique ToolCategory = "Unique"
	// CategoryMiscellaneous herramienta fungible, seguimiento solo por conteo.
	CategoryMiscellaneous ToolCategory = "Miscellaneous"
)

// Valid verifica que la categoría pertenezca al conjunto cerrado.
func (c ToolCategory) Valid() bool {
	return c == CategoryUnique || c == CategoryMiscellaneous
}

// Application aplicación de la herramienta en el pozo.
type Application string

const (
	ApplicationOpenHole          Application = "Open Hole"
	ApplicationCemented          Application = "Cemented"
	ApplicationInterventionTool  Application = "Intervention Tool"
	ApplicationActivationBall    Application = "Activation Ball"
	ApplicationFloatingEquipment Application = "Floating Equipment"
	ApplicationMiscellaneous     Application = "Miscellaneous"
)

// Applications lista las aplicaciones válidas en orden de presentación.
var Applications = []Application{
	ApplicationOpenHole,
	ApplicationCemented,
	ApplicationInterventionTool,
	ApplicationActivationBall,
	ApplicationFloatingEquipment,
	ApplicationMiscellaneous,
}

// Valid verifica que la aplicación pertenezca al conjunto cerrado.
func (a Application) Valid() bool {
	for _, v := range Applications {
		if a == v {
			return true
		}
	}
	return false
}

// Tool definición de una herramienta rastreable.
//
// Identidad: la pareja (PartNumber, SerialNumber) es única. SerialNumber nulo
// significa stock fungible (misceláneos agrupados por part number). Se crea
// implícitamente en la primera importación y nunca se borra físicamente salvo
// purga administrativa; la baja normal es desactivación (IsActive=false).
type Tool struct {
	ID           string
	PartNumber   string
	SerialNumber *string
	Description  string
	Category     ToolCategory
	Application  Application
	SpecificType string
	// Attributes atributos abiertos (seat_size, receptacle_size, ...). El
	// catálogo de llaves crece con el tiempo, por eso no se modela con campos fijos.
	Attributes map[string]string
	IsActive   bool
	CreatedAt  time.Time
}

// DisplayName etiqueta de presentación usada en listados de stock y documentos.
func (t *Tool) DisplayName() string {
	sn := "N/A"
	if t.SerialNumber != nil && *t.SerialNumber != "" {
		sn = *t.SerialNumber
	}
	return t.Description + " / PN: " + t.PartNumber + " / SN: " + sn + " / " + t.SpecificType
}
