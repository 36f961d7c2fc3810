package usecase

import (
	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// ToolTypeUseCase taxonomía administrada de tipos específicos por aplicación.
type ToolTypeUseCase struct {
	repo repository.ToolTypeRepository
}

// NewToolTypeUseCase construye el caso de uso.
func NewToolTypeUseCase(repo repository.ToolTypeRepository) *ToolTypeUseCase {
	return &ToolTypeUseCase{repo: repo}
}

// Upsert crea o actualiza un tipo por nombre.
func (uc *ToolTypeUseCase) Upsert(in dto.ToolTypeRequest) error {
	app := entity.Application(in.Application)
	if in.Name == "" || !app.Valid() {
		return domain.ErrInvalidInput
	}
	return uc.repo.Upsert(&entity.ToolType{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Application: app,
		IsActive:    true,
	})
}

// Deactivate da de baja lógica un tipo.
func (uc *ToolTypeUseCase) Deactivate(name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Deactivate(name)
}

// List lista la taxonomía completa.
func (uc *ToolTypeUseCase) List() ([]dto.ToolTypeResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByApplication lista los tipos de una aplicación.
func (uc *ToolTypeUseCase) ListByApplication(application string) ([]dto.ToolTypeResponse, error) {
	app := entity.Application(application)
	if !app.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.toResponses(uc.repo.ListByApplication(app))
}

func (uc *ToolTypeUseCase) toResponses(items []*entity.ToolType, err error) ([]dto.ToolTypeResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.ToolTypeResponse, 0, len(items))
	for _, tt := range items {
		out = append(out, dto.ToolTypeResponse{
			ID:          tt.ID,
			Name:        tt.Name,
			Application: string(tt.Application),
			IsActive:    tt.IsActive,
		})
	}
	return out, nil
}
