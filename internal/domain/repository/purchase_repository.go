package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras y sus líneas.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	UpdateTotal(purchaseID string, total decimal.Decimal) error
	GetByID(id string) (*entity.Purchase, error)
	ListItems(purchaseID string) ([]*entity.PurchaseItem, error)
	// List devuelve compras ordenadas por fecha descendente.
	List(limit, offset int) ([]*entity.Purchase, error)
	ListItemsForPurchases(purchaseIDs []string) ([]*entity.PurchaseItem, error)
}
