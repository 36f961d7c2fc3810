package inventory

import (
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
)

// Motor de derivación de stock: reproduce el libro de movimientos y calcula
// las cantidades por ubicación. Es el espejo en memoria de la agregación SQL
// de postgres.StockRepo; las reglas viven aquí para poder verificarlas sin
// base de datos.

// Stock cantidades derivadas de una herramienta por ubicación.
type Stock struct {
	Warehouse int
	Field     int
	Installed int
}

// Total suma de las tres ubicaciones. Por el invariante de conservación es
// igual al total importado en cualquier prefijo del libro.
func (s Stock) Total() int {
	return s.Warehouse + s.Field + s.Installed
}

// In devuelve la cantidad en una ubicación.
func (s Stock) In(loc entity.Location) int {
	switch loc {
	case entity.LocationWarehouse:
		return s.Warehouse
	case entity.LocationField:
		return s.Field
	case entity.LocationInstalled:
		return s.Installed
	}
	return 0
}

// Apply acumula un movimiento sobre el stock. Los movimientos solo trasladan
// cantidad entre ubicaciones; la única creación es la importación.
func (s Stock) Apply(m *entity.Movement) Stock {
	switch m.Type {
	case entity.MovementImportation:
		s.Warehouse += m.Quantity
	case entity.MovementDispatch:
		s.Warehouse -= m.Quantity
		s.Field += m.Quantity
	case entity.MovementReturn:
		s.Field -= m.Quantity
		s.Warehouse += m.Quantity
	case entity.MovementInstalled:
		s.Field -= m.Quantity
		s.Installed += m.Quantity
	case entity.MovementRevertInstallation:
		s.Installed -= m.Quantity
		s.Field += m.Quantity
	}
	return s
}

// Derive reproduce los movimientos de una herramienta y devuelve su stock.
//
// Si well no es nil, las cantidades de campo e instalado se limitan a ese
// pozo; el stock de bodega es global por naturaleza (una herramienta en
// bodega no pertenece a ningún pozo) y no se filtra.
func Derive(movements []*entity.Movement, toolID string, well *string) Stock {
	var s Stock
	for _, m := range movements {
		if m.ToolID != toolID {
			continue
		}
		if well != nil && scopedToWell(m.Type) && !wellMatches(m.Well, *well) {
			continue
		}
		s = s.Apply(m)
	}
	if well != nil {
		// Con filtro de pozo, las importaciones y despachos a otros pozos ya
		// quedaron fuera del saldo de bodega; el valor de bodega solo es
		// significativo sin filtro.
		s.Warehouse = 0
	}
	return s
}

// TotalImported total histórico importado de una herramienta.
func TotalImported(movements []*entity.Movement, toolID string) int {
	total := 0
	for _, m := range movements {
		if m.ToolID == toolID && m.Type == entity.MovementImportation {
			total += m.Quantity
		}
	}
	return total
}

// scopedToWell indica si el tipo de movimiento lleva pozo (todos menos la importación).
func scopedToWell(t entity.MovementType) bool {
	return t != entity.MovementImportation
}

func wellMatches(movWell *string, want string) bool {
	return movWell != nil && *movWell == want
}
