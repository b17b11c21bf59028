package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/internal/domain"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/memory"
)

type saleFixture struct {
	store    *memory.Store
	products *memory.ProductRepo
	sales    *memory.SaleRepo
	uc       *sales.CreateSaleUseCase
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	store := memory.NewStore()
	return &saleFixture{
		store:    store,
		products: memory.NewProductRepository(store),
		sales:    memory.NewSaleRepository(store),
		uc:       sales.NewCreateSaleUseCase(memory.NewTxRunner(store), memory.NewSaleRepository(store)),
	}
}

func (f *saleFixture) seedProduct(t *testing.T, name string, price string, stock int64) *entity.Product {
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

func (f *saleFixture) stockOf(t *testing.T, id string) int64 {
	t.Helper()
	p, err := f.products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestCreateSale_DescuentaStockYCalculaTotal(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Lápiz HB", "5.00", 10)

	out, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{{ProductID: p.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("15.00")),
		"total esperado 15.00, obtenido %s", out.Total)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.RequireFromString("15.00")))
	assert.Equal(t, int64(7), f.stockOf(t, p.ID))
}

func TestCreateSale_StockInsuficiente_RevierteTodo(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Lápiz HB", "5.00", 10)

	_, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{{ProductID: p.ID, Quantity: 11}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Stock insuficiente para Lápiz HB", err.Error())

	// Nada persistido: ni venta ni descuento de stock
	assert.Equal(t, int64(10), f.stockOf(t, p.ID))
	list, err := f.uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateSale_FallaUnaLinea_RevierteLasAnteriores(t *testing.T) {
	f := newSaleFixture(t)
	ok := f.seedProduct(t, "Bolígrafo", "1.20", 100)
	bad := f.seedProduct(t, "Resma A4", "6.90", 1)

	_, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: ok.ID, Quantity: 10},
			{ProductID: bad.ID, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La primera línea ya había descontado; el rollback la deshace
	assert.Equal(t, int64(100), f.stockOf(t, ok.ID))
	assert.Equal(t, int64(1), f.stockOf(t, bad.ID))
}

func TestCreateSale_ItemsDuplicados_DescuentanEnCascada(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Cuaderno", "3.75", 5)

	// 2 + 3 = 5 unidades: exactamente el stock disponible
	out, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: p.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(0), f.stockOf(t, p.ID))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("18.75")))
}

func TestCreateSale_ItemsDuplicados_SegundaLineaVeStockDescontado(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Cuaderno", "3.75", 5)

	// 3 + 3 = 6 > 5: la segunda línea debe fallar contra el stock restante
	_, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: p.ID, Quantity: 3},
			{ProductID: p.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.stockOf(t, p.ID))
}

func TestCreateSale_ListaVacia_VentaConTotalCero(t *testing.T) {
	f := newSaleFixture(t)

	out, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{})
	require.NoError(t, err)
	assert.True(t, out.Total.IsZero())
	assert.Empty(t, out.Items)

	got, err := f.uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "la venta vacía debe quedar persistida")
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{{ProductID: uuid.New().String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Lápiz HB", "5.00", 10)

	for _, qty := range []int64{0, -1} {
		_, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
			Items: []dto.CreateSaleItemRequest{{ProductID: p.ID, Quantity: qty}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Equal(t, int64(10), f.stockOf(t, p.ID))
}

func TestCreateSale_PrecioFotografiado(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Lápiz HB", "5.00", 10)

	out, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Subir el precio del producto no altera ventas históricas
	p.Price = decimal.RequireFromString("9.99")
	require.NoError(t, f.products.Update(p))

	got, err := f.uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("5.00")))
}

func TestListSales_FechaDescendenteConLineas(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Lápiz HB", "5.00", 100)

	first, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Separación explícita de fechas para un orden determinista
	time.Sleep(2 * time.Millisecond)

	second, err := f.uc.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	list, err := f.uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "la venta más reciente va primero")
	assert.Equal(t, first.ID, list[1].ID)
	require.Len(t, list[0].Items, 1)
	assert.Equal(t, int64(2), list[0].Items[0].Quantity)
}
