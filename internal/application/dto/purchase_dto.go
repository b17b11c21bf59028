package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseItemRequest una línea del cuerpo POST /api/compras.
// precio_compra lo suministra el llamador; el producto no guarda un costo
// de compra canónico.
type CreatePurchaseItemRequest struct {
	ProductID string          `json:"producto" validate:"required"`
	Quantity  int64           `json:"cantidad" validate:"required,min=1"`
	UnitCost  decimal.Decimal `json:"precio_compra"`
}

// CreatePurchaseRequest cuerpo de POST /api/compras.
type CreatePurchaseRequest struct {
	Items []CreatePurchaseItemRequest `json:"items" validate:"dive"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ProductID string          `json:"producto"`
	Quantity  int64           `json:"cantidad"`
	UnitCost  decimal.Decimal `json:"precio_compra"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra completa con sus líneas.
type PurchaseResponse struct {
	ID    string                 `json:"id"`
	Date  time.Time              `json:"fecha"`
	Total decimal.Decimal        `json:"total"`
	Items []PurchaseItemResponse `json:"items"`
}
