package repository

import "github.com/jhoicas/wideapple-api/internal/domain/entity"

// FruitPriceFilter filtros para el listado de precios históricos.
// Todos opcionales; Limit <= 0 significa sin límite.
type FruitPriceFilter struct {
	FruitID   *int64
	StartDate string // ISO (YYYY-MM-DD)
	EndDate   string
	Limit     int
}

// FruitPriceRepository puerto de persistencia de precios históricos.
type FruitPriceRepository interface {
	Create(price *entity.FruitPrice) error
	// List devuelve precios ordenados por fecha descendente.
	List(filter FruitPriceFilter) ([]*entity.FruitPrice, error)
}
