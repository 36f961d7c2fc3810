package inventory

import (
	"time"

	"github.com/wsuarezb/toolstock-api/internal/domain"
)

// UseCase agrupa las operaciones de escritura del inventario. Cada operación
// valida su entrada completa antes del primer write y corre dentro de una
// transacción del TxRunner: la disponibilidad se re-deriva del libro dentro de
// esa misma transacción, nunca se confía en un chequeo previo del caller.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// parseDate interpreta la fecha de negocio (YYYY-MM-DD) de los requests.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
