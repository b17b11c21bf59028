package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only del dashboard sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary agrega total, unidades y transacciones del rango [from, to].
func (r *ReportRepo) SalesSummary(from, to time.Time) (*entity.SalesSummary, error) {
	query := `
		SELECT COALESCE(SUM(v.total), 0),
		       COALESCE((SELECT SUM(i.cantidad)
		                 FROM venta_items i
		                 JOIN ventas vi ON vi.id = i.venta_id
		                 WHERE vi.fecha BETWEEN $1 AND $2), 0),
		       COUNT(*)
		FROM ventas v
		WHERE v.fecha BETWEEN $1 AND $2`
	var s entity.SalesSummary
	err := r.q.QueryRow(context.Background(), query, from, to).Scan(
		&s.Total, &s.Units, &s.Transactions,
	)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &s, nil
}

// TopProducts ranking de productos más vendidos del rango, por unidades.
func (r *ReportRepo) TopProducts(from, to time.Time, limit int) ([]*entity.TopProduct, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, SUM(i.cantidad), SUM(i.subtotal)
		FROM venta_items i
		JOIN ventas v ON v.id = i.venta_id
		JOIN productos p ON p.id = i.producto_id
		WHERE v.fecha BETWEEN $1 AND $2
		GROUP BY p.id, p.codigo, p.nombre
		ORDER BY SUM(i.cantidad) DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []*entity.TopProduct
	for rows.Next() {
		var t entity.TopProduct
		if err := rows.Scan(&t.ProductID, &t.ProductCode, &t.ProductName, &t.Units, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// LowStock productos con stock <= umbral, ordenados por stock ascendente.
func (r *ReportRepo) LowStock(threshold int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE stock <= $1 ORDER BY stock, nombre`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
