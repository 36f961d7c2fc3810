package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// FieldStatus transición de estado de una herramienta que ya está en campo.
type FieldStatus string

const (
	StatusInstalled          FieldStatus = "Installed"
	StatusRevertInstallation FieldStatus = "RevertInstallation"
	StatusReturned           FieldStatus = "Returned"
)

// FieldStatusInput entrada de UpdateFieldToolStatus.
type FieldStatusInput struct {
	ToolID      string
	Status      FieldStatus
	Responsible string
	Date        string
	Quantity    int
	Well        string
}

// UpdateFieldToolStatus cambia el estado de una herramienta en campo:
// instalarla en el pozo, revertir una instalación o devolverla a bodega. El
// pozo queda grabado en el movimiento resultante, también en instalaciones y
// reversas, para que el stock por pozo siga cuadrando después de instalar.
func (uc *UseCase) UpdateFieldToolStatus(ctx context.Context, input FieldStatusInput) error {
	if input.ToolID == "" || input.Responsible == "" || input.Well == "" || input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	var movType entity.MovementType
	switch input.Status {
	case StatusInstalled:
		movType = entity.MovementInstalled
	case StatusRevertInstallation:
		movType = entity.MovementRevertInstallation
	case StatusReturned:
		movType = entity.MovementReturn
	default:
		return domain.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		tool, err := toolRepo.GetByID(input.ToolID)
		if err != nil {
			return err
		}
		if tool == nil {
			return domain.ErrNotFound
		}
		if tool.Category == entity.CategoryUnique && input.Quantity != 1 {
			return domain.ErrInvalidInput
		}
		well := input.Well
		_, field, installed, err := stockRepo.Derived(ctx, input.ToolID, &well)
		if err != nil {
			return err
		}
		// La fuente del movimiento depende de la transición: instalar y
		// devolver consumen stock de campo, revertir consume stock instalado.
		source := field
		if input.Status == StatusRevertInstallation {
			source = installed
		}
		if source < input.Quantity {
			return domain.ErrInsufficientStock
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ToolID:      input.ToolID,
			Type:        movType,
			Quantity:    input.Quantity,
			Location:    movType.ResultingLocation(),
			Date:        date,
			Responsible: input.Responsible,
			Well:        &well,
			CreatedAt:   now,
		}
		return movRepo.Append(mov)
	})
}
