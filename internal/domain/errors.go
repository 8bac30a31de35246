package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrFruitNotFound     = errors.New("fruta no encontrada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrVendorNotFound    = errors.New("el usuario no tiene perfil de vendedor")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrWeakPassword      = errors.New("la contraseña no cumple la política de seguridad")
	ErrInvalidTradeType  = errors.New("tipo de intercambio inválido")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
