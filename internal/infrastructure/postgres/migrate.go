package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap crea las tablas si no existen y aplica la migración aditiva de
// columnas. Nunca es destructivo: solo CREATE TABLE IF NOT EXISTS y
// ALTER TABLE ADD COLUMN de columnas nulas detectadas como faltantes.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return ensureColumns(ctx, pool)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS responsibles (
		id         TEXT PRIMARY KEY,
		name       TEXT UNIQUE NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT UNIQUE NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS wells (
		id              TEXT PRIMARY KEY,
		name            TEXT UNIQUE NOT NULL,
		latitude        TEXT,
		longitude       TEXT,
		well_trajectory TEXT,
		well_fluid      TEXT,
		is_active       BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS tool_types (
		id          TEXT PRIMARY KEY,
		name        TEXT UNIQUE NOT NULL,
		application TEXT NOT NULL,
		is_active   BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS part_number_equivalences (
		id                 TEXT PRIMARY KEY,
		supplier_pn        TEXT UNIQUE NOT NULL,
		client_pn          TEXT UNIQUE NOT NULL,
		client_description TEXT
	)`,
	// NULLS NOT DISTINCT: dos herramientas con el mismo part number y serial
	// nulo son la misma entidad fungible, no dos filas.
	`CREATE TABLE IF NOT EXISTS tools (
		id            TEXT PRIMARY KEY,
		part_number   TEXT NOT NULL,
		serial_number TEXT,
		description   TEXT NOT NULL DEFAULT '',
		tool_category TEXT NOT NULL,
		application   TEXT NOT NULL,
		specific_type TEXT NOT NULL,
		attributes    JSONB,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE NULLS NOT DISTINCT (part_number, serial_number)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_movements (
		id            TEXT PRIMARY KEY,
		tool_id       TEXT NOT NULL REFERENCES tools(id),
		movement_type TEXT NOT NULL,
		quantity      INTEGER NOT NULL CHECK (quantity > 0),
		location      TEXT NOT NULL,
		date          DATE NOT NULL,
		responsible   TEXT NOT NULL,
		sales_order   TEXT,
		well          TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_tool ON inventory_movements(tool_id)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_date ON inventory_movements(date)`,
}

// additiveColumns columnas añadidas después del esquema inicial. Instalaciones
// viejas las reciben por ALTER TABLE sin pérdida de datos.
var additiveColumns = []struct {
	table, column, ddl string
}{
	{"inventory_movements", "well", "TEXT"},
	{"inventory_movements", "sales_order", "TEXT"},
	{"wells", "well_trajectory", "TEXT"},
	{"wells", "well_fluid", "TEXT"},
	{"tools", "attributes", "JSONB"},
}

func ensureColumns(ctx context.Context, pool *pgxpool.Pool) error {
	const probe = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)`
	for _, c := range additiveColumns {
		var exists bool
		if err := pool.QueryRow(ctx, probe, c.table, c.column).Scan(&exists); err != nil {
			return fmt.Errorf("probar columna %s.%s: %w", c.table, c.column, err)
		}
		if exists {
			continue
		}
		alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.table, c.column, c.ddl)
		if _, err := pool.Exec(ctx, alter); err != nil {
			return fmt.Errorf("agregar columna %s.%s: %w", c.table, c.column, err)
		}
	}
	return nil
}
