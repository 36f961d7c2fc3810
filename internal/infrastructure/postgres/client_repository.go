package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo catálogo de clientes sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Add inserta un cliente; nombre existente es un no-op (idempotente).
func (r *ClientRepo) Add(c *entity.Client) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clients (id, name, is_active) VALUES ($1, $2, TRUE)
		ON CONFLICT (name) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name)
	if err != nil {
		return fmt.Errorf("add client: %w", err)
	}
	return nil
}

// Rename renombra en sitio.
func (r *ClientRepo) Rename(name, newName string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET name = $2 WHERE name = $1`, name, newName)
	if err != nil {
		return fmt.Errorf("rename client: %w", err)
	}
	return nil
}

// Deactivate baja lógica.
func (r *ClientRepo) Deactivate(name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET is_active = FALSE WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}
	return nil
}

// List lista clientes, activos o todos.
func (r *ClientRepo) List(activeOnly bool) ([]*entity.Client, error) {
	query := `SELECT id, name, is_active FROM clients`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
