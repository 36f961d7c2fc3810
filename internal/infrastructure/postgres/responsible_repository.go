package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.ResponsibleRepository = (*ResponsibleRepo)(nil)

// ResponsibleRepo catálogo de responsables sobre PostgreSQL.
type ResponsibleRepo struct {
	q Querier
}

// NewResponsibleRepository construye el adaptador.
func NewResponsibleRepository(q Querier) *ResponsibleRepo {
	return &ResponsibleRepo{q: q}
}

// Add inserta un responsable; nombre existente es un no-op (idempotente).
func (r *ResponsibleRepo) Add(resp *entity.Responsible) error {
	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}
	query := `
		INSERT INTO responsibles (id, name, is_active) VALUES ($1, $2, TRUE)
		ON CONFLICT (name) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, resp.ID, resp.Name)
	if err != nil {
		return fmt.Errorf("add responsible: %w", err)
	}
	return nil
}

// Rename renombra en sitio.
func (r *ResponsibleRepo) Rename(name, newName string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE responsibles SET name = $2 WHERE name = $1`, name, newName)
	if err != nil {
		return fmt.Errorf("rename responsible: %w", err)
	}
	return nil
}

// Deactivate baja lógica; el historial que lo referencia por nombre no se toca.
func (r *ResponsibleRepo) Deactivate(name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE responsibles SET is_active = FALSE WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deactivate responsible: %w", err)
	}
	return nil
}

// List lista responsables, activos o todos.
func (r *ResponsibleRepo) List(activeOnly bool) ([]*entity.Responsible, error) {
	query := `SELECT id, name, is_active FROM responsibles`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list responsibles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Responsible
	for rows.Next() {
		var resp entity.Responsible
		if err := rows.Scan(&resp.ID, &resp.Name, &resp.IsActive); err != nil {
			return nil, fmt.Errorf("scan responsible: %w", err)
		}
		list = append(list, &resp)
	}
	return list, rows.Err()
}
