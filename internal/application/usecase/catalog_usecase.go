package usecase

import (
	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// ResponsibleUseCase catálogo de responsables. El alta es idempotente por
// nombre: registrar un nombre existente es un no-op.
type ResponsibleUseCase struct {
	repo repository.ResponsibleRepository
}

// NewResponsibleUseCase construye el caso de uso.
func NewResponsibleUseCase(repo repository.ResponsibleRepository) *ResponsibleUseCase {
	return &ResponsibleUseCase{repo: repo}
}

// Add registra un responsable nuevo.
func (uc *ResponsibleUseCase) Add(in dto.NameRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Add(&entity.Responsible{ID: uuid.New().String(), Name: in.Name, IsActive: true})
}

// Rename renombra un responsable en sitio.
func (uc *ResponsibleUseCase) Rename(in dto.RenameRequest) error {
	if in.Name == "" || in.NewName == "" || in.Name == in.NewName {
		return domain.ErrInvalidInput
	}
	return uc.repo.Rename(in.Name, in.NewName)
}

// Deactivate da de baja lógica un responsable.
func (uc *ResponsibleUseCase) Deactivate(name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Deactivate(name)
}

// List lista los responsables, opcionalmente solo los activos.
func (uc *ResponsibleUseCase) List(activeOnly bool) ([]dto.NamedItemResponse, error) {
	items, err := uc.repo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedItemResponse, 0, len(items))
	for _, r := range items {
		out = append(out, dto.NamedItemResponse{ID: r.ID, Name: r.Name, IsActive: r.IsActive})
	}
	return out, nil
}

// ClientUseCase catálogo de clientes, mismas reglas que responsables.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Add registra un cliente nuevo (idempotente por nombre).
func (uc *ClientUseCase) Add(in dto.NameRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Add(&entity.Client{ID: uuid.New().String(), Name: in.Name, IsActive: true})
}

// Rename renombra un cliente en sitio.
func (uc *ClientUseCase) Rename(in dto.RenameRequest) error {
	if in.Name == "" || in.NewName == "" || in.Name == in.NewName {
		return domain.ErrInvalidInput
	}
	return uc.repo.Rename(in.Name, in.NewName)
}

// Deactivate da de baja lógica un cliente.
func (uc *ClientUseCase) Deactivate(name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Deactivate(name)
}

// List lista los clientes, opcionalmente solo los activos.
func (uc *ClientUseCase) List(activeOnly bool) ([]dto.NamedItemResponse, error) {
	items, err := uc.repo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedItemResponse, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NamedItemResponse{ID: c.ID, Name: c.Name, IsActive: c.IsActive})
	}
	return out, nil
}
