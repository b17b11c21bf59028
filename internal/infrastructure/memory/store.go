// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con la misma semántica transaccional que los adaptadores de
// PostgreSQL (todo-o-nada vía copia del estado). Permite ejecutar los casos
// de uso en tests unitarios sin una base de datos viva.
package memory

import (
	"sync"

	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
)

// Store guarda el estado completo protegido por un mutex. Las transacciones
// operan sobre una copia y solo la publican en commit.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	products      map[string]*entity.Product
	sales         map[string]*entity.Sale
	saleItems     []*entity.SaleItem
	purchases     map[string]*entity.Purchase
	purchaseItems []*entity.PurchaseItem
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{state: &state{
		products:  make(map[string]*entity.Product),
		sales:     make(map[string]*entity.Sale),
		purchases: make(map[string]*entity.Purchase),
	}}
}

func (st *state) clone() *state {
	c := &state{
		products:      make(map[string]*entity.Product, len(st.products)),
		sales:         make(map[string]*entity.Sale, len(st.sales)),
		saleItems:     make([]*entity.SaleItem, 0, len(st.saleItems)),
		purchases:     make(map[string]*entity.Purchase, len(st.purchases)),
		purchaseItems: make([]*entity.PurchaseItem, 0, len(st.purchaseItems)),
	}
	for id, p := range st.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, s := range st.sales {
		cs := *s
		c.sales[id] = &cs
	}
	for _, it := range st.saleItems {
		ci := *it
		c.saleItems = append(c.saleItems, &ci)
	}
	for id, p := range st.purchases {
		cp := *p
		c.purchases[id] = &cp
	}
	for _, it := range st.purchaseItems {
		ci := *it
		c.purchaseItems = append(c.purchaseItems, &ci)
	}
	return c
}

// withState ejecuta fn sobre el estado actual tomando el mutex, o sobre el
// estado de la transacción en curso (mutex ya tomado por el TxRunner).
func withState(store *Store, tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	return fn(store.state)
}
