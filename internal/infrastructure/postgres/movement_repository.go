package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta; las únicas eliminaciones son la purga masiva y la cascada por
// herramienta de las operaciones administrativas.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append agrega una entrada al libro. No valida reglas de negocio: eso ocurre
// antes, en las operaciones de transacción.
func (r *MovementRepo) Append(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, tool_id, movement_type, quantity, location, date, responsible, sales_order, well, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ToolID, string(m.Type), m.Quantity, string(m.Location),
		m.Date, m.Responsible, m.SalesOrder, m.Well,
	)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// ListByTool lista los movimientos de una herramienta en orden de inserción.
func (r *MovementRepo) ListByTool(toolID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, tool_id, movement_type, quantity, location, date, responsible, sales_order, well, created_at
		FROM inventory_movements WHERE tool_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, toolID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var mType, loc string
		if err := rows.Scan(&m.ID, &m.ToolID, &mType, &m.Quantity, &loc,
			&m.Date, &m.Responsible, &m.SalesOrder, &m.Well, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(mType)
		m.Location = entity.Location(loc)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ExistsImportation detecta una importación previa de la herramienta bajo la
// misma orden de venta (doble reserva de un serializado).
func (r *MovementRepo) ExistsImportation(toolID, salesOrder string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM inventory_movements
			WHERE tool_id = $1 AND movement_type = $2 AND sales_order = $3
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, toolID, string(entity.MovementImportation), salesOrder).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists importation: %w", err)
	}
	return exists, nil
}

// History historial de movimientos entre dos fechas, más recientes primero.
func (r *MovementRepo) History(from, to time.Time) ([]*repository.HistoryRow, error) {
	query := `
		SELECT im.date, im.movement_type, t.part_number, t.serial_number,
		       im.quantity, im.location, im.responsible, im.sales_order, im.well
		FROM inventory_movements im
		JOIN tools t ON t.id = im.tool_id
		WHERE im.date BETWEEN $1 AND $2
		ORDER BY im.date DESC, im.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("movements history: %w", err)
	}
	defer rows.Close()
	var list []*repository.HistoryRow
	for rows.Next() {
		var h repository.HistoryRow
		var mType, loc string
		if err := rows.Scan(&h.Date, &mType, &h.PartNumber, &h.SerialNumber,
			&h.Quantity, &loc, &h.Responsible, &h.SalesOrder, &h.Well); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.Type = entity.MovementType(mType)
		h.Location = entity.Location(loc)
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Search herramientas con sus movimientos, filtrando por orden de venta y
// pozo. El término libre lo aplica la capa de aplicación (normalización de
// acentos en memoria); aquí solo se resuelven los filtros exactos.
func (r *MovementRepo) Search(f repository.SearchFilter) ([]*repository.SearchRow, error) {
	query := `
		SELECT t.id, t.part_number, t.serial_number, t.description, t.specific_type,
		       im.location, im.date, im.well, im.sales_order
		FROM tools t
		JOIN inventory_movements im ON im.tool_id = t.id`
	var conditions []string
	var args []any
	if f.SalesOrder != nil {
		args = append(args, *f.SalesOrder)
		conditions = append(conditions, fmt.Sprintf("im.sales_order = $%d", len(args)))
	}
	if f.Well != nil {
		args = append(args, *f.Well)
		conditions = append(conditions, fmt.Sprintf("im.well = $%d", len(args)))
	}
	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY im.date DESC, im.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search inventory: %w", err)
	}
	defer rows.Close()
	var list []*repository.SearchRow
	for rows.Next() {
		var s repository.SearchRow
		var loc string
		if err := rows.Scan(&s.ToolID, &s.PartNumber, &s.SerialNumber, &s.Description,
			&s.SpecificType, &loc, &s.Date, &s.Well, &s.SalesOrder); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		s.Location = entity.Location(loc)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteByTool borra los movimientos de una herramienta (cascada administrativa).
func (r *MovementRepo) DeleteByTool(toolID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_movements WHERE tool_id = $1`, toolID)
	if err != nil {
		return fmt.Errorf("delete movements by tool: %w", err)
	}
	return nil
}

// DeleteAll purga el libro completo (reset administrativo).
func (r *MovementRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_movements`)
	if err != nil {
		return fmt.Errorf("delete all movements: %w", err)
	}
	return nil
}
