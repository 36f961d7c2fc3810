package usecase

import (
	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// EquivalenceUseCase cruce proveedor↔cliente de part numbers. El part number
// del cliente se imprime en la nota de entrega cuando existe el cruce.
type EquivalenceUseCase struct {
	repo repository.EquivalenceRepository
}

// NewEquivalenceUseCase construye el caso de uso.
func NewEquivalenceUseCase(repo repository.EquivalenceRepository) *EquivalenceUseCase {
	return &EquivalenceUseCase{repo: repo}
}

// Upsert crea o actualiza el cruce del part number de proveedor.
func (uc *EquivalenceUseCase) Upsert(in dto.EquivalenceRequest) error {
	if in.SupplierPN == "" || in.ClientPN == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Upsert(&entity.PartNumberEquivalence{
		ID:                uuid.New().String(),
		SupplierPN:        in.SupplierPN,
		ClientPN:          in.ClientPN,
		ClientDescription: in.ClientDescription,
	})
}

// Get devuelve el cruce de un part number de proveedor, o ErrNotFound.
func (uc *EquivalenceUseCase) Get(supplierPN string) (*dto.EquivalenceResponse, error) {
	if supplierPN == "" {
		return nil, domain.ErrInvalidInput
	}
	eq, err := uc.repo.GetBySupplierPN(supplierPN)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return toEquivalenceResponse(eq), nil
}

// List lista todos los cruces registrados.
func (uc *EquivalenceUseCase) List() ([]dto.EquivalenceResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquivalenceResponse, 0, len(items))
	for _, eq := range items {
		out = append(out, *toEquivalenceResponse(eq))
	}
	return out, nil
}

// Delete elimina el cruce de un part number de proveedor.
func (uc *EquivalenceUseCase) Delete(supplierPN string) error {
	if supplierPN == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(supplierPN)
}

func toEquivalenceResponse(eq *entity.PartNumberEquivalence) *dto.EquivalenceResponse {
	return &dto.EquivalenceResponse{
		ID:                eq.ID,
		SupplierPN:        eq.SupplierPN,
		ClientPN:          eq.ClientPN,
		ClientDescription: eq.ClientDescription,
	}
}
