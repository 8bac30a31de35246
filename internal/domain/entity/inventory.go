package entity

import "time"

// InventoryEntry es la cantidad de una fruta en manos de un vendor
// (clave compuesta vendor + fruta). Invariante: Quantity >= 0 siempre.
// La fila se crea la primera vez que el vendor recibe la fruta; una
// cantidad cero se conserva como fila en cero.
type InventoryEntry struct {
	VendorID  int64
	FruitID   int64
	Quantity  int64
	UpdatedAt time.Time
}
