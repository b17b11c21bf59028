package purchases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/application/purchases"
	"github.com/tu-usuario/papeleria-pos/internal/domain"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/memory"
)

type purchaseFixture struct {
	store    *memory.Store
	products *memory.ProductRepo
	uc       *purchases.CreatePurchaseUseCase
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	store := memory.NewStore()
	return &purchaseFixture{
		store:    store,
		products: memory.NewProductRepository(store),
		uc:       purchases.NewCreatePurchaseUseCase(memory.NewTxRunner(store), memory.NewPurchaseRepository(store)),
	}
}

func (f *purchaseFixture) seedProduct(t *testing.T, name string, price string, stock int64) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Code:      "C-" + uuid.New().String()[:8],
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.products.Create(p))
	return p
}

func (f *purchaseFixture) stockOf(t *testing.T, id string) int64 {
	t.Helper()
	p, err := f.products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestCreatePurchase_IncrementaStockYCalculaTotal(t *testing.T) {
	f := newPurchaseFixture(t)
	p := f.seedProduct(t, "Resma A4", "6.90", 10)

	out, err := f.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: p.ID, Quantity: 2, UnitCost: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("20.00")),
		"total esperado 20.00, obtenido %s", out.Total)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].UnitCost.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, int64(12), f.stockOf(t, p.ID))
}

func TestCreatePurchase_CostoCeroAceptado(t *testing.T) {
	f := newPurchaseFixture(t)
	p := f.seedProduct(t, "Muestra gratis", "1.00", 0)

	// Donaciones o muestras entran con costo 0; el costo lo decide el llamador
	out, err := f.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: p.ID, Quantity: 5, UnitCost: decimal.Zero},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.IsZero())
	assert.Equal(t, int64(5), f.stockOf(t, p.ID))
}

func TestCreatePurchase_ProductoInexistente_RevierteTodo(t *testing.T) {
	f := newPurchaseFixture(t)
	p := f.seedProduct(t, "Resma A4", "6.90", 10)

	_, err := f.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: p.ID, Quantity: 3, UnitCost: decimal.RequireFromString("5.00")},
			{ProductID: uuid.New().String(), Quantity: 1, UnitCost: decimal.RequireFromString("5.00")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El incremento de la primera línea se deshace
	assert.Equal(t, int64(10), f.stockOf(t, p.ID))
	list, err := f.uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreatePurchase_ListaVacia_CompraConTotalCero(t *testing.T) {
	f := newPurchaseFixture(t)

	out, err := f.uc.Create(context.Background(), dto.CreatePurchaseRequest{})
	require.NoError(t, err)
	assert.True(t, out.Total.IsZero())

	got, err := f.uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestCreatePurchase_CantidadInvalida(t *testing.T) {
	f := newPurchaseFixture(t)
	p := f.seedProduct(t, "Resma A4", "6.90", 10)

	_, err := f.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: p.ID, Quantity: 0, UnitCost: decimal.RequireFromString("5.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), f.stockOf(t, p.ID))
}
