package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/domain"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

// CreateSaleUseCase crea ventas de forma transaccional: valida stock,
// fotografía el precio de venta por línea, descuenta stock con bloqueo de
// fila y calcula el total en dos fases (primero todas las líneas, después
// una única escritura del total).
type CreateSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso. saleRepo se usa solo para
// lecturas fuera de transacción (GetByID, List).
func NewCreateSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Create procesa los ítems en el orden recibido dentro de una transacción.
// Ítems duplicados del mismo producto se procesan de forma independiente
// contra el stock ya descontado por las líneas anteriores (el bloqueo de
// fila se mantiene hasta el commit). Una lista vacía produce una venta con
// total 0. Cualquier fallo revierte la venta completa.
func (uc *CreateSaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Date:      now,
		Total:     decimal.Zero,
		CreatedAt: now,
	}
	items := make([]*entity.SaleItem, 0, len(in.Items))

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Fase 1: una línea por ítem, descontando stock bajo bloqueo de fila.
		for _, req := range in.Items {
			product, err := productRepo.GetForUpdate(req.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if req.Quantity > product.Stock {
				return &domain.InsufficientStockError{ProductName: product.Name}
			}
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  req.Quantity,
				UnitPrice: product.Price,
				Subtotal:  product.Price.Mul(decimal.NewFromInt(req.Quantity)),
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock-req.Quantity); err != nil {
				return err
			}
			items = append(items, item)
		}

		// Fase 2: total = suma de subtotales, una sola escritura.
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Subtotal)
		}
		sale.Total = total
		return saleRepo.UpdateTotal(sale.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// GetByID obtiene una venta con sus líneas. Retorna (nil, nil) si no existe.
func (uc *CreateSaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	items, err := uc.saleRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// List lista ventas (fecha descendente) con sus líneas embebidas.
func (uc *CreateSaleUseCase) List(ctx context.Context, limit, offset int) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	var all []*entity.SaleItem
	if len(ids) > 0 {
		all, err = uc.saleRepo.ListItemsForSales(ids)
		if err != nil {
			return nil, err
		}
	}
	bySale := make(map[string][]*entity.SaleItem, len(list))
	for _, item := range all {
		bySale[item.SaleID] = append(bySale[item.SaleID], item)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s, bySale[s.ID]))
	}
	return out, nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:    sale.ID,
		Date:  sale.Date,
		Total: sale.Total,
		Items: make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}
