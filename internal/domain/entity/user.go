package entity

// User representa una cuenta del marketplace.
type User struct {
	ID             int64
	Username       string // único
	HashedPassword string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive       bool
}
