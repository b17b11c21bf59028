package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrProductReferenced = errors.New("producto referenciado por ventas o compras")
)

// InsufficientStockError señala que una venta pide más unidades de las
// disponibles. Lleva el nombre del producto porque el mensaje al usuario
// debe identificarlo ("Stock insuficiente para <nombre>").
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return "Stock insuficiente para " + e.ProductName
}

// Is permite detectar el error con errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
