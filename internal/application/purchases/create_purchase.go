package purchases

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

// CreatePurchaseUseCase crea compras de forma transaccional: cada línea
// incrementa el stock del producto y el total se calcula en dos fases, igual
// que en ventas. Las compras no validan suficiencia de stock (solo agregan).
type CreatePurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
}

// NewCreatePurchaseUseCase construye el caso de uso. purchaseRepo se usa solo
// para lecturas fuera de transacción.
func NewCreatePurchaseUseCase(txRunner TxRunner, purchaseRepo repository.PurchaseRepository) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo}
}

// Create procesa los ítems en orden dentro de una transacción. El costo
// unitario lo suministra el llamador y no se valida contra ningún costo
// previo (no existe un costo de compra canónico en el producto).
func (uc *CreatePurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:        uuid.New().String(),
		Date:      now,
		Total:     decimal.Zero,
		CreatedAt: now,
	}
	items := make([]*entity.PurchaseItem, 0, len(in.Items))

	err := uc.txRunner.RunPurchase(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, req := range in.Items {
			product, err := productRepo.GetForUpdate(req.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			item := &entity.PurchaseItem{
				ID:         uuid.New().String(),
				PurchaseID: purchase.ID,
				ProductID:  product.ID,
				Quantity:   req.Quantity,
				UnitCost:   req.UnitCost,
				Subtotal:   req.UnitCost.Mul(decimal.NewFromInt(req.Quantity)),
			}
			if err := purchaseRepo.CreateItem(item); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock+req.Quantity); err != nil {
				return err
			}
			items = append(items, item)
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Subtotal)
		}
		purchase.Total = total
		return purchaseRepo.UpdateTotal(purchase.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// GetByID obtiene una compra con sus líneas. Retorna (nil, nil) si no existe.
func (uc *CreatePurchaseUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	items, err := uc.purchaseRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// List lista compras (fecha descendente) con sus líneas embebidas.
func (uc *CreatePurchaseUseCase) List(ctx context.Context, limit, offset int) ([]dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	var all []*entity.PurchaseItem
	if len(ids) > 0 {
		all, err = uc.purchaseRepo.ListItemsForPurchases(ids)
		if err != nil {
			return nil, err
		}
	}
	byPurchase := make(map[string][]*entity.PurchaseItem, len(list))
	for _, item := range all {
		byPurchase[item.PurchaseID] = append(byPurchase[item.PurchaseID], item)
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPurchaseResponse(p, byPurchase[p.ID]))
	}
	return out, nil
}

func toPurchaseResponse(purchase *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:    purchase.ID,
		Date:  purchase.Date,
		Total: purchase.Total,
		Items: make([]dto.PurchaseItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}
