package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta (total 0 hasta el cierre).
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (id, fecha, total, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO venta_items (id, venta_id, producto_id, cantidad, precio_venta, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert venta item: %w", err)
	}
	return nil
}

// UpdateTotal persiste el total calculado de la venta.
func (r *SaleRepo) UpdateTotal(saleID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET total = $2 WHERE id = $1`,
		saleID, total,
	)
	if err != nil {
		return fmt.Errorf("update venta total: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. Retorna (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT id, fecha, total, created_at FROM ventas WHERE id = $1`, id,
	).Scan(&s.ID, &s.Date, &s.Total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// ListItems lista las líneas de una venta en orden de inserción.
func (r *SaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_venta, subtotal
		FROM venta_items WHERE venta_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list venta items: %w", err)
	}
	defer rows.Close()
	return scanSaleItems(rows)
}

// List lista ventas por fecha descendente con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, fecha, total, created_at
		FROM ventas ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListItemsForSales lista las líneas de todas las ventas indicadas en una
// sola consulta (evita un query por venta en los listados).
func (r *SaleRepo) ListItemsForSales(saleIDs []string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_venta, subtotal
		FROM venta_items WHERE venta_id = ANY($1) ORDER BY venta_id, seq`
	rows, err := r.q.Query(context.Background(), query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list venta items: %w", err)
	}
	defer rows.Close()
	return scanSaleItems(rows)
}

func scanSaleItems(rows pgx.Rows) ([]*entity.SaleItem, error) {
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan venta item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
