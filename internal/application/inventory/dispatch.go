package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// DispatchItemInput una línea de despacho a campo.
type DispatchItemInput struct {
	ToolID   string
	Quantity int
}

// DispatchInput entrada de DispatchTools.
type DispatchInput struct {
	Responsible string
	Date        string
	Well        string
	Items       []DispatchItemInput
}

// DispatchTools mueve herramientas de bodega a un pozo. La disponibilidad en
// bodega se re-deriva del libro dentro de la misma transacción; si alguna
// línea excede lo disponible, toda la operación se revierte con
// ErrInsufficientStock.
func (uc *UseCase) DispatchTools(ctx context.Context, input DispatchInput) error {
	if input.Responsible == "" || input.Well == "" || len(input.Items) == 0 {
		return domain.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return err
	}
	for _, it := range input.Items {
		if it.ToolID == "" || it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		for _, it := range input.Items {
			tool, err := toolRepo.GetByID(it.ToolID)
			if err != nil {
				return err
			}
			if tool == nil {
				return domain.ErrNotFound
			}
			if tool.Category == entity.CategoryUnique && it.Quantity != 1 {
				return domain.ErrInvalidInput
			}
			warehouse, _, _, err := stockRepo.Derived(ctx, it.ToolID, nil)
			if err != nil {
				return err
			}
			if warehouse < it.Quantity {
				return domain.ErrInsufficientStock
			}
			well := input.Well
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ToolID:      it.ToolID,
				Type:        entity.MovementDispatch,
				Quantity:    it.Quantity,
				Location:    entity.LocationField,
				Date:        date,
				Responsible: input.Responsible,
				Well:        &well,
				CreatedAt:   now,
			}
			if err := movRepo.Append(mov); err != nil {
				return err
			}
		}
		return nil
	})
}
