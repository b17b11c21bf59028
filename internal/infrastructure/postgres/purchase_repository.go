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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra (total 0 hasta el cierre).
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO compras (id, fecha, total, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Date, purchase.Total, purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de compra.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO compra_items (id, compra_id, producto_id, cantidad, precio_compra, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, item.ProductID, item.Quantity, item.UnitCost, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert compra item: %w", err)
	}
	return nil
}

// UpdateTotal persiste el total calculado de la compra.
func (r *PurchaseRepo) UpdateTotal(purchaseID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE compras SET total = $2 WHERE id = $1`,
		purchaseID, total,
	)
	if err != nil {
		return fmt.Errorf("update compra total: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una compra. Retorna (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(),
		`SELECT id, fecha, total, created_at FROM compras WHERE id = $1`, id,
	).Scan(&p.ID, &p.Date, &p.Total, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &p, nil
}

// ListItems lista las líneas de una compra en orden de inserción.
func (r *PurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, compra_id, producto_id, cantidad, precio_compra, subtotal
		FROM compra_items WHERE compra_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list compra items: %w", err)
	}
	defer rows.Close()
	return scanPurchaseItems(rows)
}

// List lista compras por fecha descendente con paginación.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, fecha, total, created_at
		FROM compras ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.Date, &p.Total, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListItemsForPurchases lista las líneas de todas las compras indicadas.
func (r *PurchaseRepo) ListItemsForPurchases(purchaseIDs []string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, compra_id, producto_id, cantidad, precio_compra, subtotal
		FROM compra_items WHERE compra_id = ANY($1) ORDER BY compra_id, seq`
	rows, err := r.q.Query(context.Background(), query, purchaseIDs)
	if err != nil {
		return nil, fmt.Errorf("list compra items: %w", err)
	}
	defer rows.Close()
	return scanPurchaseItems(rows)
}

func scanPurchaseItems(rows pgx.Rows) ([]*entity.PurchaseItem, error) {
	var items []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan compra item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
