package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.ToolTypeRepository = (*ToolTypeRepo)(nil)

// ToolTypeRepo taxonomía de tipos específicos sobre PostgreSQL.
type ToolTypeRepo struct {
	q Querier
}

// NewToolTypeRepository construye el adaptador.
func NewToolTypeRepository(q Querier) *ToolTypeRepo {
	return &ToolTypeRepo{q: q}
}

// Upsert crea o actualiza el tipo por nombre (alta y edición del administrador).
func (r *ToolTypeRepo) Upsert(tt *entity.ToolType) error {
	if tt.ID == "" {
		tt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO tool_types (id, name, application, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (name)
		DO UPDATE SET application = EXCLUDED.application, is_active = TRUE`
	_, err := r.q.Exec(context.Background(), query, tt.ID, tt.Name, string(tt.Application))
	if err != nil {
		return fmt.Errorf("upsert tool type: %w", err)
	}
	return nil
}

// Deactivate baja lógica del tipo.
func (r *ToolTypeRepo) Deactivate(name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tool_types SET is_active = FALSE WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deactivate tool type: %w", err)
	}
	return nil
}

// List lista toda la taxonomía (administración).
func (r *ToolTypeRepo) List() ([]*entity.ToolType, error) {
	return r.queryTypes(`SELECT id, name, application, is_active FROM tool_types ORDER BY name`)
}

// ListByApplication tipos activos de una aplicación.
func (r *ToolTypeRepo) ListByApplication(app entity.Application) ([]*entity.ToolType, error) {
	return r.queryTypes(
		`SELECT id, name, application, is_active FROM tool_types
		 WHERE application = $1 AND is_active ORDER BY name`, string(app))
}

func (r *ToolTypeRepo) queryTypes(query string, args ...any) ([]*entity.ToolType, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tool types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ToolType
	for rows.Next() {
		var tt entity.ToolType
		var app string
		if err := rows.Scan(&tt.ID, &tt.Name, &app, &tt.IsActive); err != nil {
			return nil, fmt.Errorf("scan tool type: %w", err)
		}
		tt.Application = entity.Application(app)
		list = append(list, &tt)
	}
	return list, rows.Err()
}
