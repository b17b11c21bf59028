// Package reports contiene el caso de uso del dashboard de la papelería:
// resumen de ventas de hoy contra ayer, productos más vendidos del mes y
// productos con stock bajo.
package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // entradas del ranking de más vendidos
	lowStockThreshold    = 5  // unidades para considerar stock bajo
)

// summaryTTL tiempo de vida del resumen en caché.
const summaryTTL = 60 * time.Second

// SummaryCache puerto de caché para el resumen del dashboard. Get retorna
// (nil, nil) en miss. Un caché nil desactiva la capa.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardUseCase genera el resumen del dashboard a partir de consultas
// read-only del ReportRepository, con caché opcional.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	cache      SummaryCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(reportRepo repository.ReportRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, cache: cache}
}

// GetSummary construye el DashboardSummaryDTO: hoy y ayer día completo,
// ranking del mes en curso y productos con stock bajo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	cacheKey := "dashboard:resumen:" + now.Format("2006-01-02")

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && raw != nil {
			var cached dto.DashboardSummaryDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	// Rangos: hoy 00:00–23:59:59.999, ayer igual, mes desde el día 1.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayStart.Add(-time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.reportRepo.SalesSummary(todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	yesterday, err := uc.reportRepo.SalesSummary(yesterdayStart, yesterdayEnd)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(monthStart, todayEnd, dashboardTopProducts)
	if err != nil {
		return nil, err
	}
	low, err := uc.reportRepo.LowStock(lowStockThreshold)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		Today: dto.SalesSummaryDTO{
			Total:        today.Total,
			Units:        today.Units,
			Transactions: today.Transactions,
		},
		Yesterday: dto.SalesSummaryDTO{
			Total:        yesterday.Total,
			Units:        yesterday.Units,
			Transactions: yesterday.Transactions,
		},
		TopProducts: make([]dto.TopProductDTO, 0, len(top)),
		LowStock:    make([]dto.LowStockProductDTO, 0, len(low)),
	}
	for _, t := range top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID: t.ProductID,
			Code:      t.ProductCode,
			Name:      t.ProductName,
			Units:     t.Units,
			Revenue:   t.Revenue,
		})
	}
	for _, p := range low {
		summary.LowStock = append(summary.LowStock, dto.LowStockProductDTO{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Stock:     p.Stock,
		})
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, summaryTTL)
		}
	}
	return summary, nil
}
