package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
)

type fakeResponsibleRepo struct {
	items []*entity.Responsible
}

func (r *fakeResponsibleRepo) Add(in *entity.Responsible) error {
	for _, it := range r.items {
		if it.Name == in.Name {
			return nil // alta idempotente
		}
	}
	cp := *in
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeResponsibleRepo) Rename(name, newName string) error {
	for _, it := range r.items {
		if it.Name == name {
			it.Name = newName
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeResponsibleRepo) Deactivate(name string) error {
	for _, it := range r.items {
		if it.Name == name {
			it.IsActive = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeResponsibleRepo) List(activeOnly bool) ([]*entity.Responsible, error) {
	var out []*entity.Responsible
	for _, it := range r.items {
		if activeOnly && !it.IsActive {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

type fakeWellRepo struct {
	items []*entity.Well
}

func (r *fakeWellRepo) Add(in *entity.Well) error {
	for _, it := range r.items {
		if it.Name == in.Name {
			return nil
		}
	}
	cp := *in
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeWellRepo) Update(name string, in *entity.Well) error {
	for _, it := range r.items {
		if it.Name == name {
			it.Name = in.Name
			it.Latitude = in.Latitude
			it.Longitude = in.Longitude
			it.WellTrajectory = in.WellTrajectory
			it.WellFluid = in.WellFluid
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeWellRepo) Deactivate(name string) error {
	for _, it := range r.items {
		if it.Name == name {
			it.IsActive = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeWellRepo) List(activeOnly bool) ([]*entity.Well, error) {
	var out []*entity.Well
	for _, it := range r.items {
		if activeOnly && !it.IsActive {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeWellRepo) ListWithCoordinates() ([]*entity.Well, error) {
	var out []*entity.Well
	for _, it := range r.items {
		if it.Latitude != nil && it.Longitude != nil {
			out = append(out, it)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func TestResponsible_AddEsIdempotente(t *testing.T) {
	repo := &fakeResponsibleRepo{}
	uc := NewResponsibleUseCase(repo)

	require.NoError(t, uc.Add(dto.NameRequest{Name: "C. Rojas"}))
	require.NoError(t, uc.Add(dto.NameRequest{Name: "C. Rojas"}))

	list, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestResponsible_DeactivateFiltraDeActivos(t *testing.T) {
	repo := &fakeResponsibleRepo{}
	uc := NewResponsibleUseCase(repo)
	require.NoError(t, uc.Add(dto.NameRequest{Name: "C. Rojas"}))
	require.NoError(t, uc.Add(dto.NameRequest{Name: "M. Pérez"}))

	require.NoError(t, uc.Deactivate("C. Rojas"))

	active, err := uc.List(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "M. Pérez", active[0].Name)

	all, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2, "la baja es lógica, el registro sobrevive")
}

func TestResponsible_RenameValida(t *testing.T) {
	uc := NewResponsibleUseCase(&fakeResponsibleRepo{})
	err := uc.Rename(dto.RenameRequest{Name: "X", NewName: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWell_MapPointsDescartaCoordenadasInvalidas(t *testing.T) {
	repo := &fakeWellRepo{}
	uc := NewWellUseCase(repo)

	require.NoError(t, uc.Add(dto.WellRequest{Name: "Well-A", Latitude: strPtr("4.5981"), Longitude: strPtr("-74.0758")}))
	require.NoError(t, uc.Add(dto.WellRequest{Name: "Well-B", Latitude: strPtr("n/a"), Longitude: strPtr("-74.1")}))
	require.NoError(t, uc.Add(dto.WellRequest{Name: "Well-C"}))

	points, err := uc.MapPoints()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Well-A", points[0].Name)
	assert.Equal(t, "4.5981", points[0].Latitude.String())
}

func TestWell_UpdateConRenombre(t *testing.T) {
	repo := &fakeWellRepo{}
	uc := NewWellUseCase(repo)
	require.NoError(t, uc.Add(dto.WellRequest{Name: "Well-A"}))

	require.NoError(t, uc.Update(dto.WellRequest{
		Name:    "Well-A",
		NewName: "Well-A1",
	}))

	list, err := uc.List(false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Well-A1", list[0].Name)
}
