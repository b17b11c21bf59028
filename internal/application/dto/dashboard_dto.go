package dto

import "github.com/shopspring/decimal"

// SalesSummaryDTO resumen de ventas de un día.
type SalesSummaryDTO struct {
	Total        decimal.Decimal `json:"total"`
	Units        int64           `json:"unidades"`
	Transactions int64           `json:"transacciones"`
}

// TopProductDTO entrada del ranking de más vendidos.
type TopProductDTO struct {
	ProductID string          `json:"producto"`
	Code      string          `json:"codigo"`
	Name      string          `json:"nombre"`
	Units     int64           `json:"unidades"`
	Revenue   decimal.Decimal `json:"ingresos"`
}

// LowStockProductDTO producto con stock bajo para el widget de inventario.
type LowStockProductDTO struct {
	ProductID string `json:"producto"`
	Code      string `json:"codigo"`
	Name      string `json:"nombre"`
	Stock     int64  `json:"stock"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/resumen.
type DashboardSummaryDTO struct {
	Today       SalesSummaryDTO      `json:"hoy"`
	Yesterday   SalesSummaryDTO      `json:"ayer"`
	TopProducts []TopProductDTO      `json:"mas_vendidos"`
	LowStock    []LowStockProductDTO `json:"stock_bajo"`
}
