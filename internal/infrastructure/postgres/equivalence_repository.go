package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

var _ repository.EquivalenceRepository = (*EquivalenceRepo)(nil)

// EquivalenceRepo cruce de part numbers proveedor↔cliente sobre PostgreSQL.
type EquivalenceRepo struct {
	q Querier
}

// NewEquivalenceRepository construye el adaptador.
func NewEquivalenceRepository(q Querier) *EquivalenceRepo {
	return &EquivalenceRepo{q: q}
}

// Upsert crea o reemplaza la equivalencia por supplier_pn.
func (r *EquivalenceRepo) Upsert(eq *entity.PartNumberEquivalence) error {
	if eq.ID == "" {
		eq.ID = uuid.New().String()
	}
	query := `
		INSERT INTO part_number_equivalences (id, supplier_pn, client_pn, client_description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (supplier_pn)
		DO UPDATE SET client_pn = EXCLUDED.client_pn, client_description = EXCLUDED.client_description`
	_, err := r.q.Exec(context.Background(), query, eq.ID, eq.SupplierPN, eq.ClientPN, eq.ClientDescription)
	if err != nil {
		// client_pn también es único; chocar con el de otra fila sí es error.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("upsert equivalence: %w", err)
	}
	return nil
}

// GetBySupplierPN busca la referencia del cliente para un part number propio.
func (r *EquivalenceRepo) GetBySupplierPN(supplierPN string) (*entity.PartNumberEquivalence, error) {
	query := `
		SELECT id, supplier_pn, client_pn, client_description
		FROM part_number_equivalences WHERE supplier_pn = $1`
	var eq entity.PartNumberEquivalence
	err := r.q.QueryRow(context.Background(), query, supplierPN).Scan(
		&eq.ID, &eq.SupplierPN, &eq.ClientPN, &eq.ClientDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equivalence: %w", err)
	}
	return &eq, nil
}

// List lista todas las equivalencias.
func (r *EquivalenceRepo) List() ([]*entity.PartNumberEquivalence, error) {
	query := `
		SELECT id, supplier_pn, client_pn, client_description
		FROM part_number_equivalences ORDER BY supplier_pn`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list equivalences: %w", err)
	}
	defer rows.Close()
	var list []*entity.PartNumberEquivalence
	for rows.Next() {
		var eq entity.PartNumberEquivalence
		if err := rows.Scan(&eq.ID, &eq.SupplierPN, &eq.ClientPN, &eq.ClientDescription); err != nil {
			return nil, fmt.Errorf("scan equivalence: %w", err)
		}
		list = append(list, &eq)
	}
	return list, rows.Err()
}

// Delete elimina la equivalencia de un part number de proveedor.
func (r *EquivalenceRepo) Delete(supplierPN string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM part_number_equivalences WHERE supplier_pn = $1`, supplierPN)
	if err != nil {
		return fmt.Errorf("delete equivalence: %w", err)
	}
	return nil
}
