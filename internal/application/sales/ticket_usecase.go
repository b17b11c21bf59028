package sales

import (
	"context"

	"github.com/tu-usuario/papeleria-pos/internal/domain"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

// TicketUseCase genera el ticket PDF de una venta existente.
type TicketUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	generator   TicketGenerator
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	generator TicketGenerator,
) *TicketUseCase {
	return &TicketUseCase{saleRepo: saleRepo, productRepo: productRepo, generator: generator}
}

// GetTicket resuelve la venta, sus líneas y los nombres de producto, y
// delega el render al generador PDF.
func (uc *TicketUseCase) GetTicket(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ListItems(saleID)
	if err != nil {
		return nil, err
	}
	lines := make([]TicketLine, 0, len(items))
	for _, item := range items {
		line := TicketLine{Item: item}
		// La FK protegida garantiza que el producto existe; aun así el ticket
		// no debe fallar por un nombre y se degrada al ID ante un error de lectura.
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err == nil && product != nil {
			line.ProductName = product.Name
			line.ProductCode = product.Code
		} else {
			line.ProductName = item.ProductID
		}
		lines = append(lines, line)
	}
	return uc.generator.GenerateTicket(ctx, sale, lines)
}
