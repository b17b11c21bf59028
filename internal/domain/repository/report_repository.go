package repository

import (
	"time"

	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
)

// ReportRepository expone consultas read-only para el dashboard.
type ReportRepository interface {
	// SalesSummary agrega total, unidades y transacciones de las ventas con
	// fecha en [from, to].
	SalesSummary(from, to time.Time) (*entity.SalesSummary, error)
	// TopProducts devuelve los productos más vendidos del rango, por unidades.
	TopProducts(from, to time.Time, limit int) ([]*entity.TopProduct, error)
	// LowStock devuelve productos con stock igual o inferior al umbral,
	// ordenados por stock ascendente.
	LowStock(threshold int64) ([]*entity.Product, error)
}
