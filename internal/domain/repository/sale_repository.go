package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// UpdateTotal persiste el total calculado de la venta (una sola escritura
	// al cierre de la transacción).
	UpdateTotal(saleID string, total decimal.Decimal) error
	GetByID(id string) (*entity.Sale, error)
	ListItems(saleID string) ([]*entity.SaleItem, error)
	// List devuelve ventas ordenadas por fecha descendente.
	List(limit, offset int) ([]*entity.Sale, error)
	// ListItemsForSales devuelve las líneas de todas las ventas indicadas.
	ListItemsForSales(saleIDs []string) ([]*entity.SaleItem, error)
}
