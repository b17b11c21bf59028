package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleItemRequest una línea del cuerpo POST /api/ventas.
type CreateSaleItemRequest struct {
	ProductID string `json:"producto" validate:"required"`
	Quantity  int64  `json:"cantidad" validate:"required,min=1"`
}

// CreateSaleRequest cuerpo de POST /api/ventas. La lista puede ser vacía
// (venta con total 0); el orden de los ítems se respeta.
type CreateSaleRequest struct {
	Items []CreateSaleItemRequest `json:"items" validate:"dive"`
}

// SaleItemResponse línea de venta en respuestas. precio_venta y subtotal
// son calculados por el servidor.
type SaleItemResponse struct {
	ProductID string          `json:"producto"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_venta"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa con sus líneas.
type SaleResponse struct {
	ID    string             `json:"id"`
	Date  time.Time          `json:"fecha"`
	Total decimal.Decimal    `json:"total"`
	Items []SaleItemResponse `json:"items"`
}
