package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.WellRepository = (*WellRepo)(nil)

// WellRepo catálogo de pozos sobre PostgreSQL.
type WellRepo struct {
	q Querier
}

// NewWellRepository construye el adaptador.
func NewWellRepository(q Querier) *WellRepo {
	return &WellRepo{q: q}
}

const wellColumns = `id, name, latitude, longitude, well_trajectory, well_fluid, is_active`

// Add inserta un pozo; nombre existente es un no-op (idempotente).
func (r *WellRepo) Add(w *entity.Well) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	query := `
		INSERT INTO wells (id, name, latitude, longitude, well_trajectory, well_fluid, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (name) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.Latitude, w.Longitude, w.WellTrajectory, w.WellFluid)
	if err != nil {
		return fmt.Errorf("add well: %w", err)
	}
	return nil
}

// Update renombra y actualiza los atributos descriptivos en sitio.
func (r *WellRepo) Update(name string, w *entity.Well) error {
	query := `
		UPDATE wells
		SET name = $2, latitude = $3, longitude = $4, well_trajectory = $5, well_fluid = $6
		WHERE name = $1`
	_, err := r.q.Exec(context.Background(), query,
		name, w.Name, w.Latitude, w.Longitude, w.WellTrajectory, w.WellFluid)
	if err != nil {
		return fmt.Errorf("update well: %w", err)
	}
	return nil
}

// Deactivate baja lógica; los movimientos que referencian el pozo no se tocan.
func (r *WellRepo) Deactivate(name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE wells SET is_active = FALSE WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deactivate well: %w", err)
	}
	return nil
}

// List lista pozos, activos o todos.
func (r *WellRepo) List(activeOnly bool) ([]*entity.Well, error) {
	query := `SELECT ` + wellColumns + ` FROM wells`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	return r.queryWells(query)
}

// ListWithCoordinates pozos con latitud y longitud presentes (vista de mapa).
func (r *WellRepo) ListWithCoordinates() ([]*entity.Well, error) {
	query := `
		SELECT ` + wellColumns + ` FROM wells
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY name`
	return r.queryWells(query)
}

func (r *WellRepo) queryWells(query string, args ...any) ([]*entity.Well, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wells: %w", err)
	}
	defer rows.Close()
	var list []*entity.Well
	for rows.Next() {
		var w entity.Well
		if err := rows.Scan(&w.ID, &w.Name, &w.Latitude, &w.Longitude,
			&w.WellTrajectory, &w.WellFluid, &w.IsActive); err != nil {
			return nil, fmt.Errorf("scan well: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
