package sales

import (
	"context"

	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
	"github.com/tu-usuario/papeleria-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la venta completa:
// o se aplican todas las líneas y descuentos de stock, o ninguno.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// TicketLine línea del ticket con el nombre del producto ya resuelto.
type TicketLine struct {
	Item        *entity.SaleItem
	ProductName string
	ProductCode string
}

// TicketGenerator genera la representación PDF del ticket de una venta.
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, sale *entity.Sale, lines []TicketLine) ([]byte, error)
}
