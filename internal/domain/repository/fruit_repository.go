package repository

import "github.com/jhoicas/wideapple-api/internal/domain/entity"

// FruitRepository puerto de lectura del catálogo de frutas.
type FruitRepository interface {
	// GetByID devuelve la fruta o nil si no existe.
	GetByID(id int64) (*entity.Fruit, error)
	// GetByName devuelve la fruta por nombre único o nil si no existe.
	GetByName(name string) (*entity.Fruit, error)
	// List lista frutas con paginación y filtro opcional por rareza.
	List(rarityLevel *int, limit, offset int) ([]*entity.Fruit, error)
	// ListAll devuelve el catálogo completo (simulador de precios, seed).
	ListAll() ([]*entity.Fruit, error)
	// Create siembra una fruta nueva (solo catálogo/seed).
	Create(fruit *entity.Fruit) error
}
