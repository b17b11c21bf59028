// Comando seed: carga productos de demostración para probar la API en local.
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/application/usecase"
	"github.com/tu-usuario/papeleria-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/papeleria-pos/pkg/config"
	"github.com/tu-usuario/papeleria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))

	demo := []dto.CreateProductRequest{
		{Code: "LAP-001", Name: "Lápiz HB", Description: "Lápiz de grafito HB", Price: decimal.NewFromFloat(0.50), Stock: 200},
		{Code: "BOL-001", Name: "Bolígrafo azul", Description: "Bolígrafo tinta azul punta fina", Price: decimal.NewFromFloat(1.20), Stock: 150},
		{Code: "CUA-100", Name: "Cuaderno 100 hojas", Description: "Cuaderno rayado tamaño carta", Price: decimal.NewFromFloat(3.75), Stock: 80},
		{Code: "RES-A4", Name: "Resma papel A4", Description: "500 hojas 75g", Price: decimal.NewFromFloat(6.90), Stock: 40},
		{Code: "TIJ-001", Name: "Tijeras escolares", Description: "", Price: decimal.NewFromFloat(2.30), Stock: 35},
		{Code: "PEG-250", Name: "Pegamento en barra", Description: "Barra 250g", Price: decimal.NewFromFloat(1.80), Stock: 60},
	}

	created := 0
	for _, in := range demo {
		if _, err := productUC.Create(in); err != nil {
			// Reejecución del seed: códigos ya existentes se omiten
			log.Warn().Err(err).Str("codigo", in.Code).Msg("producto omitido")
			continue
		}
		created++
	}
	log.Info().Int("creados", created).Int("total", len(demo)).Msg("seed finalizado")
}
