package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/application/purchases"
	"github.com/tu-usuario/papeleria-pos/internal/application/reports"
	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/internal/application/usecase"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/papeleria-pos/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/papeleria-pos/internal/interfaces/http"
)

// newTestApp monta la API completa sobre los adaptadores en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	saleRepo := memory.NewSaleRepository(store)
	purchaseRepo := memory.NewPurchaseRepository(store)
	reportRepo := memory.NewReportRepository(store)
	txRunner := memory.NewTxRunner(store)

	ticketGenerator := infrapdf.NewMarotoTicketGenerator("Papelería Test")

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(productRepo),
		CreateSale:     sales.NewCreateSaleUseCase(txRunner, saleRepo),
		Ticket:         sales.NewTicketUseCase(saleRepo, productRepo, ticketGenerator),
		CreatePurchase: purchases.NewCreatePurchaseUseCase(txRunner, purchaseRepo),
		Dashboard:      reports.NewDashboardUseCase(reportRepo, nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func createProduct(t *testing.T, app *fiber.App, code, name, price string, stock int64) dto.ProductResponse {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/api/productos", fiber.Map{
		"codigo": code,
		"nombre": name,
		"precio": price,
		"stock":  stock,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)
	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestProductosEndpoints(t *testing.T) {
	app := newTestApp(t)

	created := createProduct(t, app, "LAP-001", "Lápiz HB", "5.00", 10)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(10), created.Stock)

	// Código duplicado
	resp, raw := doJSON(t, app, "POST", "/api/productos", fiber.Map{
		"codigo": "LAP-001", "nombre": "Otro", "precio": "1.00",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var dup dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &dup))
	assert.Equal(t, "DUPLICATE", dup.Code)

	// Precio inválido
	resp, _ = doJSON(t, app, "POST", "/api/productos", fiber.Map{
		"codigo": "X", "nombre": "X", "precio": "0.00",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// GET por ID y 404
	resp, _ = doJSON(t, app, "GET", "/api/productos/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/productos/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Listado
	resp, raw = doJSON(t, app, "GET", "/api/productos", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list, 1)

	// Borrado sin movimientos
	resp, _ = doJSON(t, app, "DELETE", "/api/productos/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestVentasEndpoints(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "LAP-001", "Lápiz HB", "5.00", 10)

	resp, raw := doJSON(t, app, "POST", "/api/ventas", fiber.Map{
		"items": []fiber.Map{{"producto": p.ID, "cantidad": 3}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)
	var sale dto.SaleResponse
	require.NoError(t, json.Unmarshal(raw, &sale))
	assert.Equal(t, "15", sale.Total.String())
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "5", sale.Items[0].UnitPrice.String())

	// El stock quedó descontado
	resp, raw = doJSON(t, app, "GET", "/api/productos/"+p.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(7), got.Stock)

	// El producto con movimientos no puede borrarse
	resp, _ = doJSON(t, app, "DELETE", "/api/productos/"+p.ID, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// GET de la venta y 404
	resp, _ = doJSON(t, app, "GET", "/api/ventas/"+sale.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/ventas/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestVentas_StockInsuficiente(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "LAP-001", "Lápiz HB", "5.00", 10)

	resp, raw := doJSON(t, app, "POST", "/api/ventas", fiber.Map{
		"items": []fiber.Map{{"producto": p.ID, "cantidad": 11}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Stock insuficiente para Lápiz HB", out.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)

	// Stock intacto tras el rechazo
	resp, raw = doJSON(t, app, "GET", "/api/productos/"+p.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(10), got.Stock)
}

func TestVentas_TicketPDF(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "LAP-001", "Lápiz HB", "5.00", 10)

	_, raw := doJSON(t, app, "POST", "/api/ventas", fiber.Map{
		"items": []fiber.Map{{"producto": p.ID, "cantidad": 2}},
	})
	var sale dto.SaleResponse
	require.NoError(t, json.Unmarshal(raw, &sale))

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/api/ventas/%s/ticket", sale.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	require.Greater(t, len(body), 4)
	assert.Equal(t, "%PDF", string(body[:4]), "la respuesta debe ser un PDF")
}

func TestComprasEndpoints(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "RES-A4", "Resma A4", "6.90", 10)

	resp, raw := doJSON(t, app, "POST", "/api/compras", fiber.Map{
		"items": []fiber.Map{{"producto": p.ID, "cantidad": 2, "precio_compra": "10.00"}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)
	var purchase dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &purchase))
	assert.Equal(t, "20", purchase.Total.String())

	// El stock quedó incrementado
	resp, raw = doJSON(t, app, "GET", "/api/productos/"+p.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(12), got.Stock)

	resp, _ = doJSON(t, app, "GET", "/api/compras/"+purchase.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/compras", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDashboardResumen(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "LAP-001", "Lápiz HB", "5.00", 3)

	_, _ = doJSON(t, app, "POST", "/api/ventas", fiber.Map{
		"items": []fiber.Map{{"producto": p.ID, "cantidad": 2}},
	})

	resp, raw := doJSON(t, app, "GET", "/api/dashboard/resumen", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.DashboardSummaryDTO
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, int64(2), out.Today.Units)
	assert.Equal(t, int64(1), out.Today.Transactions)
	require.Len(t, out.LowStock, 1, "quedó 1 unidad: bajo el umbral de stock bajo")
}
