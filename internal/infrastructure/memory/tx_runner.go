package memory

import (
	"context"

	"github.com/tu-usuario/papeleria-pos/internal/application/purchases"
	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and purchases.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ purchases.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks contra una copia del estado y la publica solo
// si fn retorna nil: un error deja el store exactamente como estaba.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunSale corre fn con repos atados a la copia transaccional.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.state.clone()
	if err := fn(&ProductRepo{tx: st}, &SaleRepo{tx: st}); err != nil {
		return err
	}
	r.store.state = st
	return nil
}

// RunPurchase corre fn con repos atados a la copia transaccional.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.state.clone()
	if err := fn(&ProductRepo{tx: st}, &PurchaseRepo{tx: st}); err != nil {
		return err
	}
	r.store.state = st
	return nil
}
