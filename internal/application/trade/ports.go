package trade

import (
	"context"

	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de inventario atado a esa tx. Garantiza que las dos mutaciones
// de un intercambio se confirman juntas o se revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error
}
