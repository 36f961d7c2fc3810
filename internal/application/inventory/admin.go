package inventory

import (
	"context"

	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// DeleteTool borra una herramienta y todo su historial de movimientos en una
// sola transacción. Operación administrativa e irreversible.
func (uc *UseCase) DeleteTool(ctx context.Context, toolID string) error {
	if toolID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		tool, err := toolRepo.GetByID(toolID)
		if err != nil {
			return err
		}
		if tool == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.DeleteByTool(toolID); err != nil {
			return err
		}
		return toolRepo.Delete(toolID)
	})
}

// DeactivateTool da de baja lógica una herramienta sin tocar su historial.
func (uc *UseCase) DeactivateTool(ctx context.Context, toolID string) error {
	if toolID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		tool, err := toolRepo.GetByID(toolID)
		if err != nil {
			return err
		}
		if tool == nil {
			return domain.ErrNotFound
		}
		return toolRepo.Deactivate(toolID)
	})
}

// ResetAllData purga el libro de movimientos y el registro de herramientas.
// Pensada para reinicios de ambiente, no para operación normal.
func (uc *UseCase) ResetAllData(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := movRepo.DeleteAll(); err != nil {
			return err
		}
		return toolRepo.DeleteAll()
	})
}
