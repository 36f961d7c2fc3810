package inventory

import (
	"context"

	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre el stock derivado y el
// registro de herramientas. Corre sobre el pool, sin transacción.
type QueryUseCase struct {
	toolRepo  repository.ToolRepository
	stockRepo repository.StockRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(toolRepo repository.ToolRepository, stockRepo repository.StockRepository) *QueryUseCase {
	return &QueryUseCase{toolRepo: toolRepo, stockRepo: stockRepo}
}

// StockInLocation lista las herramientas con existencia positiva en la
// ubicación, con los filtros de catálogo aplicados.
func (uc *QueryUseCase) StockInLocation(ctx context.Context, loc entity.Location, f repository.StockFilter) ([]*entity.StockLine, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if f.Category != nil && !f.Category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if f.Application != nil && !f.Application.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.StockInLocation(ctx, loc, f)
}

// ToolDetail devuelve la herramienta y sus tres cantidades derivadas.
func (uc *QueryUseCase) ToolDetail(ctx context.Context, toolID string) (*entity.Tool, *entity.StockReportRow, error) {
	if toolID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	tool, err := uc.toolRepo.GetByID(toolID)
	if err != nil {
		return nil, nil, err
	}
	if tool == nil {
		return nil, nil, domain.ErrNotFound
	}
	warehouse, field, installed, err := uc.stockRepo.Derived(ctx, toolID, nil)
	if err != nil {
		return nil, nil, err
	}
	row := &entity.StockReportRow{
		PartNumber:     tool.PartNumber,
		SerialNumber:   tool.SerialNumber,
		Description:    tool.Description,
		WarehouseStock: warehouse,
		FieldStock:     field,
		InstalledStock: installed,
	}
	return tool, row, nil
}

// ListTools lista el registro completo de herramientas (administración).
func (uc *QueryUseCase) ListTools(ctx context.Context) ([]*entity.Tool, error) {
	return uc.toolRepo.List()
}
