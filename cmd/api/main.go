package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/papeleria-pos/internal/application/purchases"
	"github.com/tu-usuario/papeleria-pos/internal/application/reports"
	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/internal/application/usecase"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/cache"
	infrapdf "github.com/tu-usuario/papeleria-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/papeleria-pos/internal/interfaces/http"
	"github.com/tu-usuario/papeleria-pos/pkg/config"
	"github.com/tu-usuario/papeleria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché Redis para el dashboard. REDIS_ADDR vacío desactiva la capa y
	// el caso de uso consulta directo a PostgreSQL.
	var summaryCache reports.SummaryCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		summaryCache = redisCache
	}

	productUC := usecase.NewProductUseCase(productRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, saleRepo)
	createPurchaseUC := purchases.NewCreatePurchaseUseCase(txRunner, purchaseRepo)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, summaryCache)

	// PDF: ticket imprimible de la venta
	ticketGenerator := infrapdf.NewMarotoTicketGenerator(cfg.App.Name)
	ticketUC := sales.NewTicketUseCase(saleRepo, productRepo, ticketGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Papelería POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		CreateSale:     createSaleUC,
		Ticket:         ticketUC,
		CreatePurchase: createPurchaseUC,
		Dashboard:      dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
