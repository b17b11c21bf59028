package memory

import (
	"sort"

	"github.com/tu-usuario/papeleria-pos/internal/domain"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	store *Store
	tx    *state // no nil dentro de una transacción
}

// NewProductRepository construye el adaptador sobre el store.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) with(fn func(st *state) error) error {
	return withState(r.store, r.tx, fn)
}

// Create persiste un producto; código duplicado retorna ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.with(func(st *state) error {
		for _, p := range st.products {
			if p.Code == product.Code {
				return domain.ErrDuplicate
			}
		}
		cp := *product
		st.products[product.ID] = &cp
		return nil
	})
}

// GetByID retorna una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.with(func(st *state) error {
		if p, ok := st.products[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetByCode retorna una copia del producto por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	var out *entity.Product
	err := r.with(func(st *state) error {
		for _, p := range st.products {
			if p.Code == code {
				cp := *p
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: la transacción en memoria ya es exclusiva
// (el mutex del store se mantiene hasta el commit).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// Update reemplaza el producto; código duplicado retorna ErrDuplicate.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.with(func(st *state) error {
		for id, p := range st.products {
			if id != product.ID && p.Code == product.Code {
				return domain.ErrDuplicate
			}
		}
		cp := *product
		st.products[product.ID] = &cp
		return nil
	})
}

// UpdateStock fija el stock absoluto del producto.
func (r *ProductRepo) UpdateStock(id string, stock int64) error {
	return r.with(func(st *state) error {
		if p, ok := st.products[id]; ok {
			p.Stock = stock
		}
		return nil
	})
}

// List retorna copias de todos los productos ordenadas por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.with(func(st *state) error {
		for _, p := range st.products {
			cp := *p
			list = append(list, &cp)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, err
}

// Delete elimina el producto; falla con ErrProductReferenced si alguna línea
// de venta o compra lo referencia.
func (r *ProductRepo) Delete(id string) error {
	return r.with(func(st *state) error {
		for _, it := range st.saleItems {
			if it.ProductID == id {
				return domain.ErrProductReferenced
			}
		}
		for _, it := range st.purchaseItems {
			if it.ProductID == id {
				return domain.ErrProductReferenced
			}
		}
		delete(st.products, id)
		return nil
	})
}
