package entity

import "github.com/shopspring/decimal"

// SalesSummary agrega las ventas de un rango de fechas.
type SalesSummary struct {
	Total        decimal.Decimal // suma de totales de venta
	Units        int64           // unidades vendidas
	Transactions int64           // número de ventas
}

// TopProduct es una entrada del ranking de productos más vendidos.
type TopProduct struct {
	ProductID   string
	ProductCode string
	ProductName string
	Units       int64
	Revenue     decimal.Decimal
}
