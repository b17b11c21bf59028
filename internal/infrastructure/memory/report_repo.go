package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación en memoria de ReportRepository.
type ReportRepo struct {
	store *Store
}

// NewReportRepository construye el adaptador sobre el store.
func NewReportRepository(store *Store) *ReportRepo {
	return &ReportRepo{store: store}
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// SalesSummary agrega total, unidades y transacciones del rango [from, to].
func (r *ReportRepo) SalesSummary(from, to time.Time) (*entity.SalesSummary, error) {
	summary := &entity.SalesSummary{Total: decimal.Zero}
	err := withState(r.store, nil, func(st *state) error {
		ids := make(map[string]bool)
		for _, s := range st.sales {
			if inRange(s.Date, from, to) {
				summary.Total = summary.Total.Add(s.Total)
				summary.Transactions++
				ids[s.ID] = true
			}
		}
		for _, it := range st.saleItems {
			if ids[it.SaleID] {
				summary.Units += it.Quantity
			}
		}
		return nil
	})
	return summary, err
}

// TopProducts ranking de productos más vendidos del rango, por unidades.
func (r *ReportRepo) TopProducts(from, to time.Time, limit int) ([]*entity.TopProduct, error) {
	var list []*entity.TopProduct
	err := withState(r.store, nil, func(st *state) error {
		ids := make(map[string]bool)
		for _, s := range st.sales {
			if inRange(s.Date, from, to) {
				ids[s.ID] = true
			}
		}
		byProduct := make(map[string]*entity.TopProduct)
		for _, it := range st.saleItems {
			if !ids[it.SaleID] {
				continue
			}
			t, ok := byProduct[it.ProductID]
			if !ok {
				t = &entity.TopProduct{ProductID: it.ProductID, Revenue: decimal.Zero}
				if p, ok := st.products[it.ProductID]; ok {
					t.ProductCode = p.Code
					t.ProductName = p.Name
				}
				byProduct[it.ProductID] = t
			}
			t.Units += it.Quantity
			t.Revenue = t.Revenue.Add(it.Subtotal)
		}
		for _, t := range byProduct {
			list = append(list, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Units > list[j].Units })
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

// LowStock productos con stock <= umbral, ordenados por stock ascendente.
func (r *ReportRepo) LowStock(threshold int64) ([]*entity.Product, error) {
	var list []*entity.Product
	err := withState(r.store, nil, func(st *state) error {
		for _, p := range st.products {
			if p.Stock <= threshold {
				cp := *p
				list = append(list, &cp)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Stock != list[j].Stock {
			return list[i].Stock < list[j].Stock
		}
		return list[i].Name < list[j].Name
	})
	return list, err
}
