package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/papeleria-pos/internal/application/purchases"
	"github.com/tu-usuario/papeleria-pos/internal/application/reports"
	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	CreateSale     *sales.CreateSaleUseCase
	Ticket         *sales.TicketUseCase
	CreatePurchase *purchases.CreatePurchaseUseCase
	Dashboard      *reports.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	// Ventas
	ventas := api.Group("/ventas")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.Ticket)
	ventas.Get("/", saleHandler.List)
	ventas.Post("/", saleHandler.Create)
	ventas.Get("/:id", saleHandler.GetByID)
	ventas.Get("/:id/ticket", saleHandler.Ticket)

	// Compras
	compras := api.Group("/compras")
	purchaseHandler := NewPurchaseHandler(deps.CreatePurchase)
	compras.Get("/", purchaseHandler.List)
	compras.Post("/", purchaseHandler.Create)
	compras.Get("/:id", purchaseHandler.GetByID)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	dashboard.Get("/resumen", dashboardHandler.Summary)
}
