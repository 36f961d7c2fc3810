package inventory

import (
	"context"

	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de las operaciones de
// inventario: o entran todos los movimientos de la operación, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
