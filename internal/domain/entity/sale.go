package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Total es calculado: suma de los
// subtotales de sus líneas, persistido una sola vez al cierre de la
// transacción.
type Sale struct {
	ID        string
	Date      time.Time
	Total     decimal.Decimal
	CreatedAt time.Time
}

// SaleItem es una línea de venta. UnitPrice es una fotografía del precio del
// producto al momento de crear la línea; Subtotal = Quantity × UnitPrice.
// Las líneas no se editan después de creadas.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
