package reports_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/papeleria-pos/internal/application/reports"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/memory"
)

// fakeCache implementa reports.SummaryCache en memoria contando accesos.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	gets   int
	sets   int
	misses int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	raw, ok := c.data[key]
	if !ok {
		c.misses++
		return nil, nil
	}
	return raw, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

type dashboardFixture struct {
	store    *memory.Store
	products *memory.ProductRepo
	sales    *memory.SaleRepo
}

func newDashboardFixture() *dashboardFixture {
	store := memory.NewStore()
	return &dashboardFixture{
		store:    store,
		products: memory.NewProductRepository(store),
		sales:    memory.NewSaleRepository(store),
	}
}

func (f *dashboardFixture) seedProduct(t *testing.T, name string, stock int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:    uuid.New().String(),
		Code:  "C-" + name,
		Name:  name,
		Price: decimal.NewFromInt(2),
		Stock: stock,
	}
	require.NoError(t, f.products.Create(p))
	return p
}

// seedSale crea una venta de una línea en la fecha dada.
func (f *dashboardFixture) seedSale(t *testing.T, p *entity.Product, qty int64, date time.Time) {
	t.Helper()
	subtotal := p.Price.Mul(decimal.NewFromInt(qty))
	sale := &entity.Sale{ID: uuid.New().String(), Date: date, Total: subtotal, CreatedAt: date}
	require.NoError(t, f.sales.Create(sale))
	require.NoError(t, f.sales.CreateItem(&entity.SaleItem{
		ID:        uuid.New().String(),
		SaleID:    sale.ID,
		ProductID: p.ID,
		Quantity:  qty,
		UnitPrice: p.Price,
		Subtotal:  subtotal,
	}))
}

func TestDashboardSummary_AgregadosDelDia(t *testing.T) {
	f := newDashboardFixture()
	lapiz := f.seedProduct(t, "Lápiz", 100)
	resma := f.seedProduct(t, "Resma", 3) // stock bajo (umbral 5)

	now := time.Now()
	f.seedSale(t, lapiz, 3, now)                      // hoy: 6.00
	f.seedSale(t, resma, 1, now)                      // hoy: 2.00
	f.seedSale(t, lapiz, 5, now.AddDate(0, 0, -1))    // ayer: 10.00
	f.seedSale(t, lapiz, 9, now.AddDate(0, -2, 0))    // fuera del mes en curso

	uc := reports.NewDashboardUseCase(memory.NewReportRepository(f.store), nil)
	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Today.Total.Equal(decimal.RequireFromString("8.00")),
		"total de hoy esperado 8.00, obtenido %s", out.Today.Total)
	assert.Equal(t, int64(4), out.Today.Units)
	assert.Equal(t, int64(2), out.Today.Transactions)

	assert.True(t, out.Yesterday.Total.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, int64(1), out.Yesterday.Transactions)

	require.NotEmpty(t, out.TopProducts)
	assert.Equal(t, "Lápiz", out.TopProducts[0].Name, "el más vendido del mes va primero")

	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "Resma", out.LowStock[0].Name)
	assert.Equal(t, int64(3), out.LowStock[0].Stock)
}

func TestDashboardSummary_PrimerDiaDelMes(t *testing.T) {
	// Una venta de ayer puede caer en el mes anterior; el ranking solo
	// considera el mes en curso
	f := newDashboardFixture()
	lapiz := f.seedProduct(t, "Lápiz", 100)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	f.seedSale(t, lapiz, 2, monthStart.Add(time.Hour))

	uc := reports.NewDashboardUseCase(memory.NewReportRepository(f.store), nil)
	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, int64(2), out.TopProducts[0].Units)
}

func TestDashboardSummary_CacheHit(t *testing.T) {
	f := newDashboardFixture()
	lapiz := f.seedProduct(t, "Lápiz", 100)
	f.seedSale(t, lapiz, 3, time.Now())

	cache := newFakeCache()
	uc := reports.NewDashboardUseCase(memory.NewReportRepository(f.store), cache)

	first, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.misses)
	assert.Equal(t, 1, cache.sets)

	// Una venta nueva no se refleja mientras el resumen siga cacheado
	f.seedSale(t, lapiz, 10, time.Now())

	second, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "el hit no debe reescribir la caché")
	assert.True(t, second.Today.Total.Equal(first.Today.Total))
}
