package repository

import "github.com/jhoicas/wideapple-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID devuelve el usuario o nil si no existe.
	GetByID(id int64) (*entity.User, error)
	// GetByUsername devuelve el usuario o nil si no existe.
	GetByUsername(username string) (*entity.User, error)
}
