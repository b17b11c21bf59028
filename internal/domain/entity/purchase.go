package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa la cabecera de una compra (entrada de mercancía).
type Purchase struct {
	ID        string
	Date      time.Time
	Total     decimal.Decimal
	CreatedAt time.Time
}

// PurchaseItem es una línea de compra. UnitCost lo suministra el llamador;
// el producto no guarda un costo de compra canónico. Crear la línea
// incrementa el stock del producto referenciado.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64
	UnitCost   decimal.Decimal
	Subtotal   decimal.Decimal
}
