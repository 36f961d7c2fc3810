package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.ToolRepository = (*ToolRepo)(nil)

// ToolRepo implementación del registro de herramientas sobre PostgreSQL (usable con pool o tx).
type ToolRepo struct {
	q Querier
}

// NewToolRepository construye el adaptador. Pasar pool o tx (Querier).
func NewToolRepository(q Querier) *ToolRepo {
	return &ToolRepo{q: q}
}

const toolColumns = `id, part_number, serial_number, description, tool_category, application, specific_type, attributes, is_active, created_at`

// Create persiste una definición de herramienta nueva.
func (r *ToolRepo) Create(tool *entity.Tool) error {
	if tool.ID == "" {
		tool.ID = uuid.New().String()
	}
	var attrs []byte
	if len(tool.Attributes) > 0 {
		var err error
		attrs, err = json.Marshal(tool.Attributes)
		if err != nil {
			return fmt.Errorf("marshal attributes: %w", err)
		}
	}
	query := `
		INSERT INTO tools (id, part_number, serial_number, description, tool_category, application, specific_type, attributes, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, now())`
	_, err := r.q.Exec(context.Background(), query,
		tool.ID, tool.PartNumber, tool.SerialNumber, tool.Description,
		string(tool.Category), string(tool.Application), tool.SpecificType, attrs,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tool: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIdentity busca por (part_number, serial_number); serial nulo es la fila fungible.
func (r *ToolRepo) GetByIdentity(partNumber string, serialNumber *string) (*entity.Tool, error) {
	query := `
		SELECT ` + toolColumns + ` FROM tools
		WHERE part_number = $1
		  AND (serial_number = $2 OR (serial_number IS NULL AND $2::TEXT IS NULL))`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partNumber, serialNumber))
}

// List lista todas las herramientas registradas (administración).
func (r *ToolRepo) List() ([]*entity.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY part_number, serial_number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tool
	for rows.Next() {
		t, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Deactivate marca la herramienta como inactiva sin tocar su historial.
func (r *ToolRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE tools SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate tool: %w", err)
	}
	return nil
}

// Delete borra físicamente la herramienta (la cascada de movimientos la maneja la operación administrativa).
func (r *ToolRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}

// DeleteAll purga el registro completo (reset administrativo).
func (r *ToolRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tools`)
	if err != nil {
		return fmt.Errorf("delete all tools: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ToolRepo) scanOne(row pgx.Row) (*entity.Tool, error) {
	t, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *ToolRepo) scanRow(row rowScanner) (*entity.Tool, error) {
	var t entity.Tool
	var category, application string
	var attrs []byte
	if err := row.Scan(
		&t.ID, &t.PartNumber, &t.SerialNumber, &t.Description,
		&category, &application, &t.SpecificType, &attrs, &t.IsActive, &t.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan tool: %w", err)
	}
	t.Category = entity.ToolCategory(category)
	t.Application = entity.Application(application)
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &t.Attributes); err != nil {
			return nil, fmt.Errorf("unmarshal attributes: %w", err)
		}
	}
	return &t, nil
}
