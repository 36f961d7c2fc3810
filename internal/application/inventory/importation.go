package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// ImportationItemInput una línea de importación. La categoría se deriva del
// serial: con serial la herramienta es Unique (cantidad forzada a 1), sin
// serial es fungible.
type ImportationItemInput struct {
	PartNumber   string
	SerialNumber *string
	Description  string
	Quantity     int
	Application  entity.Application
	SpecificType string
	Attributes   map[string]string
}

// ImportationInput entrada de AddImportation.
type ImportationInput struct {
	SalesOrder  string
	Responsible string
	Date        string
	Items       []ImportationItemInput
}

// AddImportation registra el ingreso a bodega de un lote de herramientas bajo
// una orden de venta. Las herramientas que no existen se crean implícitamente
// a partir de la línea (find-or-create por identidad). Toda la operación es
// atómica: si un serial ya fue importado bajo la misma orden de venta, se
// devuelve ErrDuplicateImportation y ninguna línea entra al libro.
func (uc *UseCase) AddImportation(ctx context.Context, input ImportationInput) error {
	if input.SalesOrder == "" || input.Responsible == "" || len(input.Items) == 0 {
		return domain.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return err
	}
	for i := range input.Items {
		it := &input.Items[i]
		if it.PartNumber == "" || it.Description == "" || it.SpecificType == "" {
			return domain.ErrInvalidInput
		}
		if !it.Application.Valid() {
			return domain.ErrInvalidInput
		}
		if it.SerialNumber != nil && *it.SerialNumber == "" {
			it.SerialNumber = nil
		}
		if it.SerialNumber != nil {
			// Serializada: la unidad de seguimiento es el serial.
			if it.Quantity != 1 {
				return domain.ErrInvalidInput
			}
		} else if it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		for i := range input.Items {
			it := &input.Items[i]
			tool, err := toolRepo.GetByIdentity(it.PartNumber, it.SerialNumber)
			if err != nil {
				return err
			}
			if tool == nil {
				tool = &entity.Tool{
					ID:           uuid.New().String(),
					PartNumber:   it.PartNumber,
					SerialNumber: it.SerialNumber,
					Description:  it.Description,
					Category:     categoryFor(it.SerialNumber),
					Application:  it.Application,
					SpecificType: it.SpecificType,
					Attributes:   it.Attributes,
				}
				if err := toolRepo.Create(tool); err != nil {
					return err
				}
			} else if tool.SerialNumber != nil {
				exists, err := movRepo.ExistsImportation(tool.ID, input.SalesOrder)
				if err != nil {
					return err
				}
				if exists {
					return domain.ErrDuplicateImportation
				}
			}
			so := input.SalesOrder
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ToolID:      tool.ID,
				Type:        entity.MovementImportation,
				Quantity:    it.Quantity,
				Location:    entity.LocationWarehouse,
				Date:        date,
				Responsible: input.Responsible,
				SalesOrder:  &so,
				CreatedAt:   now,
			}
			if err := movRepo.Append(mov); err != nil {
				return err
			}
		}
		return nil
	})
}

func categoryFor(serialNumber *string) entity.ToolCategory {
	if serialNumber != nil {
		return entity.CategoryUnique
	}
	return entity.CategoryMiscellaneous
}
