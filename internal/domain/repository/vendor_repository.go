package repository

import "github.com/jhoicas/wideapple-api/internal/domain/entity"

// VendorRepository puerto de persistencia de vendors.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	// GetByID devuelve el vendor o nil si no existe.
	GetByID(id int64) (*entity.Vendor, error)
	// GetByUserID devuelve el vendor del usuario o nil si no tiene.
	GetByUserID(userID int64) (*entity.Vendor, error)
	// List lista vendors con paginación y filtro opcional por especie.
	List(species string, limit, offset int) ([]*entity.Vendor, error)
}
