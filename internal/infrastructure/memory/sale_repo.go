package memory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository. Las líneas se
// guardan en orden de inserción.
type SaleRepo struct {
	store *Store
	tx    *state
}

// NewSaleRepository construye el adaptador sobre el store.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

func (r *SaleRepo) with(fn func(st *state) error) error {
	return withState(r.store, r.tx, fn)
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	return r.with(func(st *state) error {
		cp := *sale
		st.sales[sale.ID] = &cp
		return nil
	})
}

// CreateItem agrega una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	return r.with(func(st *state) error {
		ci := *item
		st.saleItems = append(st.saleItems, &ci)
		return nil
	})
}

// UpdateTotal fija el total de la venta.
func (r *SaleRepo) UpdateTotal(saleID string, total decimal.Decimal) error {
	return r.with(func(st *state) error {
		if s, ok := st.sales[saleID]; ok {
			s.Total = total
		}
		return nil
	})
}

// GetByID retorna una copia de la venta, o (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.with(func(st *state) error {
		if s, ok := st.sales[id]; ok {
			cs := *s
			out = &cs
		}
		return nil
	})
	return out, err
}

// ListItems retorna las líneas de la venta en orden de inserción.
func (r *SaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	var items []*entity.SaleItem
	err := r.with(func(st *state) error {
		for _, it := range st.saleItems {
			if it.SaleID == saleID {
				ci := *it
				items = append(items, &ci)
			}
		}
		return nil
	})
	return items, err
}

// List retorna ventas por fecha descendente con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var list []*entity.Sale
	err := r.with(func(st *state) error {
		for _, s := range st.sales {
			cs := *s
			list = append(list, &cs)
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

// ListItemsForSales retorna las líneas de todas las ventas indicadas.
func (r *SaleRepo) ListItemsForSales(saleIDs []string) ([]*entity.SaleItem, error) {
	wanted := make(map[string]bool, len(saleIDs))
	for _, id := range saleIDs {
		wanted[id] = true
	}
	var items []*entity.SaleItem
	err := r.with(func(st *state) error {
		for _, it := range st.saleItems {
			if wanted[it.SaleID] {
				ci := *it
				items = append(items, &ci)
			}
		}
		return nil
	})
	return items, err
}
