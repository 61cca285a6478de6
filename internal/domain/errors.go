package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateSKU      = errors.New("el SKU ya existe")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNotEmpty          = errors.New("la operación requiere un sistema vacío")
	ErrCorruptSnapshot   = errors.New("snapshot persistido ilegible")
)
