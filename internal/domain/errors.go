package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrDuplicateImportation = errors.New("importación duplicada: el serial ya fue importado bajo esa orden de venta")
	ErrInsufficientStock    = errors.New("stock insuficiente en la ubicación de origen")
	ErrUnauthorized         = errors.New("no autorizado")
)
