package repository

import (
	"time"

	"github.com/jhoicas/wideapple-api/internal/domain/entity"
)

// InventoryRepository puerto del almacén de inventario por (vendor, fruta).
// Las mutaciones de un intercambio se componen dentro de una transacción
// (TxRunner): bloquear fila origen, verificar stock, restar y abonar.
type InventoryRepository interface {
	// Get obtiene la entrada; si no hay fila devuelve cantidad cero.
	Get(vendorID, fruitID int64) (*entity.InventoryEntry, error)
	// GetForUpdate obtiene la entrada y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(vendorID, fruitID int64) (*entity.InventoryEntry, error)
	// Upsert inserta o actualiza la cantidad absoluta de la entrada.
	Upsert(entry *entity.InventoryEntry) error
	// Add incrementa la cantidad con un upsert aditivo, sin leer la fila:
	// abonos concurrentes al mismo destino no pierden incrementos.
	Add(vendorID, fruitID, delta int64, now time.Time) error
	// ListByVendor lista las entradas de un vendor.
	ListByVendor(vendorID int64) ([]*entity.InventoryEntry, error)
}
