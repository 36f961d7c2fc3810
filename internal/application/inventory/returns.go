package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// ReturnItemInput una línea de retorno a bodega. Well identifica el pozo del
// que sale la herramienta; viene del despacho que la puso en campo.
type ReturnItemInput struct {
	ToolID   string
	Quantity int
	Well     *string
}

// ReturnInput entrada de ReturnTools.
type ReturnInput struct {
	Responsible string
	Date        string
	Items       []ReturnItemInput
}

// ReturnTools devuelve herramientas de campo a bodega. El pozo de origen se
// arrastra en cada movimiento Return para que el stock por pozo cuadre. La
// disponibilidad en campo (en ese pozo) se re-deriva dentro de la transacción.
func (uc *UseCase) ReturnTools(ctx context.Context, input ReturnInput) error {
	if input.Responsible == "" || len(input.Items) == 0 {
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
		if it.Well != nil && *it.Well == "" {
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
			_, field, _, err := stockRepo.Derived(ctx, it.ToolID, it.Well)
			if err != nil {
				return err
			}
			if field < it.Quantity {
				return domain.ErrInsufficientStock
			}
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ToolID:      it.ToolID,
				Type:        entity.MovementReturn,
				Quantity:    it.Quantity,
				Location:    entity.LocationWarehouse,
				Date:        date,
				Responsible: input.Responsible,
				Well:        it.Well,
				CreatedAt:   now,
			}
			if err := movRepo.Append(mov); err != nil {
				return err
			}
		}
		return nil
	})
}
