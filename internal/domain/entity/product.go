package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la papelería.
// Price es el precio de venta vigente (mínimo 0.01); Stock son unidades
// enteras y nunca baja de cero. Solo las ventas y compras mutan Stock.
type Product struct {
	ID          string
	Code        string // código único (ej. "A1")
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
