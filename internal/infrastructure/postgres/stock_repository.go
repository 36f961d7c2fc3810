package postgres

import (
	"context"
	"fmt"

	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo motor de derivación de stock sobre PostgreSQL. Reproduce en SQL la
// aritmética de domain/inventory: las cantidades jamás se materializan, cada
// consulta agrega el libro de movimientos.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier): dentro
// de una transacción las operaciones de escritura lo usan para re-validar
// disponibilidad antes de insertar.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Sumas por ubicación. El signo lo aporta el tipo de movimiento, nunca la
// cantidad almacenada.
const (
	warehouseSum = `SUM(CASE WHEN movement_type IN ('Importation', 'Return') THEN quantity
	                         WHEN movement_type = 'Dispatch' THEN -quantity ELSE 0 END)`
	fieldSum = `SUM(CASE WHEN movement_type IN ('Dispatch', 'RevertInstallation') THEN quantity
	                     WHEN movement_type IN ('Return', 'Installed') THEN -quantity ELSE 0 END)`
	installedSum = `SUM(CASE WHEN movement_type = 'Installed' THEN quantity
	                         WHEN movement_type = 'RevertInstallation' THEN -quantity ELSE 0 END)`
)

// StockInLocation lista herramientas con cantidad positiva en la ubicación.
// En bodega se agrupa solo por herramienta (la bodega no pertenece a ningún
// pozo); en campo e instalado, por pareja (herramienta, pozo).
func (r *StockRepo) StockInLocation(ctx context.Context, loc entity.Location, f repository.StockFilter) ([]*entity.StockLine, error) {
	if !loc.Valid() {
		return nil, fmt.Errorf("ubicación desconocida: %q", loc)
	}
	if loc == entity.LocationWarehouse {
		return r.warehouseLines(ctx, f)
	}
	return r.wellScopedLines(ctx, loc, f)
}

func (r *StockRepo) warehouseLines(ctx context.Context, f repository.StockFilter) ([]*entity.StockLine, error) {
	query := `
		WITH tool_stock AS (
			SELECT tool_id, ` + warehouseSum + ` AS stock
			FROM inventory_movements
			GROUP BY tool_id
		)
		SELECT t.id, t.part_number, t.serial_number, t.description, t.tool_category, t.specific_type,
		       ts.stock, NULL::TEXT AS well
		FROM tools t
		JOIN tool_stock ts ON ts.tool_id = t.id
		WHERE ts.stock > 0`
	query, args := applyToolFilters(query, nil, f)
	query += " ORDER BY t.part_number, t.serial_number"
	return r.queryLines(ctx, query, args)
}

func (r *StockRepo) wellScopedLines(ctx context.Context, loc entity.Location, f repository.StockFilter) ([]*entity.StockLine, error) {
	stockExpr := fieldSum
	if loc == entity.LocationInstalled {
		stockExpr = installedSum
	}
	query := `
		WITH tool_stock AS (
			SELECT tool_id, well, ` + stockExpr + ` AS stock
			FROM inventory_movements
			WHERE movement_type <> 'Importation'
			GROUP BY tool_id, well
		)
		SELECT t.id, t.part_number, t.serial_number, t.description, t.tool_category, t.specific_type,
		       ts.stock, ts.well
		FROM tools t
		JOIN tool_stock ts ON ts.tool_id = t.id
		WHERE ts.stock > 0`
	var args []any
	if f.Well != nil {
		args = append(args, *f.Well)
		query += fmt.Sprintf(" AND ts.well = $%d", len(args))
	}
	query, args = applyToolFilters(query, args, f)
	query += " ORDER BY t.part_number, t.serial_number, ts.well"
	return r.queryLines(ctx, query, args)
}

// applyToolFilters agrega los filtros de clasificación de la herramienta.
func applyToolFilters(query string, args []any, f repository.StockFilter) (string, []any) {
	if f.Category != nil {
		args = append(args, string(*f.Category))
		query += fmt.Sprintf(" AND t.tool_category = $%d", len(args))
	}
	if f.Application != nil {
		args = append(args, string(*f.Application))
		query += fmt.Sprintf(" AND t.application = $%d", len(args))
	}
	if f.SpecificType != nil {
		args = append(args, *f.SpecificType)
		query += fmt.Sprintf(" AND t.specific_type = $%d", len(args))
	}
	return query, args
}

func (r *StockRepo) queryLines(ctx context.Context, query string, args []any) ([]*entity.StockLine, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock in location: %w", err)
	}
	defer rows.Close()
	var lines []*entity.StockLine
	for rows.Next() {
		var (
			l        entity.StockLine
			tool     entity.Tool
			category string
		)
		if err := rows.Scan(&tool.ID, &tool.PartNumber, &tool.SerialNumber, &tool.Description,
			&category, &tool.SpecificType, &l.Quantity, &l.Well); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		tool.Category = entity.ToolCategory(category)
		l.ToolID = tool.ID
		l.PartNumber = tool.PartNumber
		l.SerialNumber = tool.SerialNumber
		l.Category = tool.Category
		l.DisplayName = tool.DisplayName()
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Derived devuelve las tres cantidades de una herramienta. Con filtro de pozo,
// el saldo de bodega se reporta en cero: la bodega es global y solo tiene
// sentido sin filtro (mismo contrato que inventory.Derive).
func (r *StockRepo) Derived(ctx context.Context, toolID string, well *string) (warehouse, field, installed int, err error) {
	query := `
		SELECT COALESCE(` + warehouseSum + `, 0),
		       COALESCE(` + fieldSum + `, 0),
		       COALESCE(` + installedSum + `, 0)
		FROM inventory_movements
		WHERE tool_id = $1`
	args := []any{toolID}
	if well != nil {
		query += ` AND (movement_type = 'Importation' OR well = $2)`
		args = append(args, *well)
	}
	if err = r.q.QueryRow(ctx, query, args...).Scan(&warehouse, &field, &installed); err != nil {
		return 0, 0, 0, fmt.Errorf("derive stock: %w", err)
	}
	if well != nil {
		warehouse = 0
	}
	return warehouse, field, installed, nil
}

// FullStockReport stock agregado por herramienta (sin desglose por pozo) para
// impresión/exportación. Solo herramientas con alguna existencia.
func (r *StockRepo) FullStockReport(ctx context.Context) ([]*entity.StockReportRow, error) {
	query := `
		WITH tool_stock AS (
			SELECT tool_id,
			       ` + warehouseSum + ` AS warehouse_stock,
			       ` + fieldSum + ` AS field_stock,
			       ` + installedSum + ` AS installed_stock
			FROM inventory_movements
			GROUP BY tool_id
		)
		SELECT t.part_number, t.serial_number, t.description,
		       ts.warehouse_stock, ts.field_stock, ts.installed_stock
		FROM tools t
		JOIN tool_stock ts ON ts.tool_id = t.id
		WHERE (ts.warehouse_stock + ts.field_stock + ts.installed_stock) > 0
		ORDER BY t.part_number, t.serial_number`
	return r.queryReport(ctx, query)
}

// WarehouseStockReport solo lo que hay en bodega.
func (r *StockRepo) WarehouseStockReport(ctx context.Context) ([]*entity.StockReportRow, error) {
	query := `
		WITH tool_stock AS (
			SELECT tool_id,
			       ` + warehouseSum + ` AS warehouse_stock,
			       ` + fieldSum + ` AS field_stock,
			       ` + installedSum + ` AS installed_stock
			FROM inventory_movements
			GROUP BY tool_id
		)
		SELECT t.part_number, t.serial_number, t.description,
		       ts.warehouse_stock, ts.field_stock, ts.installed_stock
		FROM tools t
		JOIN tool_stock ts ON ts.tool_id = t.id
		WHERE ts.warehouse_stock > 0
		ORDER BY t.part_number, t.serial_number`
	return r.queryReport(ctx, query)
}

func (r *StockRepo) queryReport(ctx context.Context, query string) ([]*entity.StockReportRow, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()
	var report []*entity.StockReportRow
	for rows.Next() {
		var row entity.StockReportRow
		if err := rows.Scan(&row.PartNumber, &row.SerialNumber, &row.Description,
			&row.WarehouseStock, &row.FieldStock, &row.InstalledStock); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		report = append(report, &row)
	}
	return report, rows.Err()
}
