package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// WellUseCase catálogo de pozos y la vista de mapa.
type WellUseCase struct {
	repo repository.WellRepository
}

// NewWellUseCase construye el caso de uso.
func NewWellUseCase(repo repository.WellRepository) *WellUseCase {
	return &WellUseCase{repo: repo}
}

// Add registra un pozo nuevo (idempotente por nombre).
func (uc *WellUseCase) Add(in dto.WellRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Add(&entity.Well{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		WellTrajectory: in.WellTrajectory,
		WellFluid:      in.WellFluid,
		IsActive:       true,
	})
}

// Update edita un pozo existente; NewName permite renombrarlo en sitio.
func (uc *WellUseCase) Update(in dto.WellRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	name := in.Name
	if in.NewName != "" {
		name = in.NewName
	}
	return uc.repo.Update(in.Name, &entity.Well{
		Name:           name,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		WellTrajectory: in.WellTrajectory,
		WellFluid:      in.WellFluid,
	})
}

// Deactivate da de baja lógica un pozo.
func (uc *WellUseCase) Deactivate(name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Deactivate(name)
}

// List lista los pozos del catálogo.
func (uc *WellUseCase) List(activeOnly bool) ([]dto.WellResponse, error) {
	wells, err := uc.repo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WellResponse, 0, len(wells))
	for _, w := range wells {
		out = append(out, dto.WellResponse{
			ID:             w.ID,
			Name:           w.Name,
			Latitude:       w.Latitude,
			Longitude:      w.Longitude,
			WellTrajectory: w.WellTrajectory,
			WellFluid:      w.WellFluid,
			IsActive:       w.IsActive,
		})
	}
	return out, nil
}

// MapPoints pozos con coordenadas numéricas válidas. Las coordenadas se
// guardan como texto libre; los pozos cuyo valor no parsea como decimal no
// aparecen en el mapa.
func (uc *WellUseCase) MapPoints() ([]dto.WellMapPoint, error) {
	wells, err := uc.repo.ListWithCoordinates()
	if err != nil {
		return nil, err
	}
	points := make([]dto.WellMapPoint, 0, len(wells))
	for _, w := range wells {
		if w.Latitude == nil || w.Longitude == nil {
			continue
		}
		lat, err := decimal.NewFromString(*w.Latitude)
		if err != nil {
			continue
		}
		lon, err := decimal.NewFromString(*w.Longitude)
		if err != nil {
			continue
		}
		points = append(points, dto.WellMapPoint{
			Name:       w.Name,
			Latitude:   lat,
			Longitude:  lon,
			Trajectory: w.WellTrajectory,
			Fluid:      w.WellFluid,
		})
	}
	return points, nil
}
