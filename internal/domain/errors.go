package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrValidation        = errors.New("validación fallida")
	ErrSequenceExhausted = errors.New("secuencia de nomor DO agotada para el año")
	ErrUnexpected        = errors.New("fallo inesperado")
)
