package memory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación en memoria de PurchaseRepository.
type PurchaseRepo struct {
	store *Store
	tx    *state
}

// NewPurchaseRepository construye el adaptador sobre el store.
func NewPurchaseRepository(store *Store) *PurchaseRepo {
	return &PurchaseRepo{store: store}
}

func (r *PurchaseRepo) with(fn func(st *state) error) error {
	return withState(r.store, r.tx, fn)
}

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	return r.with(func(st *state) error {
		cp := *purchase
		st.purchases[purchase.ID] = &cp
		return nil
	})
}

// CreateItem agrega una línea de compra.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	return r.with(func(st *state) error {
		ci := *item
		st.purchaseItems = append(st.purchaseItems, &ci)
		return nil
	})
}

// UpdateTotal fija el total de la compra.
func (r *PurchaseRepo) UpdateTotal(purchaseID string, total decimal.Decimal) error {
	return r.with(func(st *state) error {
		if p, ok := st.purchases[purchaseID]; ok {
			p.Total = total
		}
		return nil
	})
}

// GetByID retorna una copia de la compra, o (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	var out *entity.Purchase
	err := r.with(func(st *state) error {
		if p, ok := st.purchases[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

// ListItems retorna las líneas de la compra en orden de inserción.
func (r *PurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var items []*entity.PurchaseItem
	err := r.with(func(st *state) error {
		for _, it := range st.purchaseItems {
			if it.PurchaseID == purchaseID {
				ci := *it
				items = append(items, &ci)
			}
		}
		return nil
	})
	return items, err
}

// List retorna compras por fecha descendente con paginación.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	var list []*entity.Purchase
	err := r.with(func(st *state) error {
		for _, p := range st.purchases {
			cp := *p
			list = append(list, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

// ListItemsForPurchases retorna las líneas de todas las compras indicadas.
func (r *PurchaseRepo) ListItemsForPurchases(purchaseIDs []string) ([]*entity.PurchaseItem, error) {
	wanted := make(map[string]bool, len(purchaseIDs))
	for _, id := range purchaseIDs {
		wanted[id] = true
	}
	var items []*entity.PurchaseItem
	err := r.with(func(st *state) error {
		for _, it := range st.purchaseItems {
			if wanted[it.PurchaseID] {
				ci := *it
				items = append(items, &ci)
			}
		}
		return nil
	})
	return items, err
}
