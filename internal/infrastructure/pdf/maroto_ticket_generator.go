// Package pdf implementa la representación gráfica del ticket de venta.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────┐
//	│  HEADER: Papelería + N° venta + fecha │
//	│  ───────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.U. | Subt │
//	│  ───────────────────────────────────  │
//	│  TOTAL                                │
//	│  Leyenda de agradecimiento            │
//	└───────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.TicketGenerator = (*MarotoTicketGenerator)(nil)

// MarotoTicketGenerator implementa sales.TicketGenerator usando Maroto v2.
type MarotoTicketGenerator struct {
	shopName string
}

// NewMarotoTicketGenerator construye el generador con el nombre del negocio.
func NewMarotoTicketGenerator(shopName string) *MarotoTicketGenerator {
	return &MarotoTicketGenerator{shopName: shopName}
}

// GenerateTicket genera el PDF del ticket y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicket(
	_ context.Context,
	sale *entity.Sale,
	lines []sales.TicketLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de venta", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq), N° de venta y fecha (der).
func headerRow(shopName string, sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Venta "+shortID(sale.ID), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 8}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("Cant.", bold)),
		col.New(5).Add(text.New("Producto", bold)),
		col.New(2).Add(text.New("P. Unit", boldRight)),
		col.New(3).Add(text.New("Subtotal", boldRight)),
	)
}

func tableLineRows(lines []sales.TicketLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	normal := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	for _, l := range lines {
		name := l.ProductName
		if l.ProductCode != "" {
			name = l.ProductCode + " - " + name
		}
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Item.Quantity), normal)),
			col.New(5).Add(text.New(name, normal)),
			col.New(2).Add(text.New(l.Item.UnitPrice.StringFixed(2), right)),
			col.New(3).Add(text.New(l.Item.Subtotal.StringFixed(2), right)),
		))
	}
	return rows
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
		col.New(3).Add(text.New(sale.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New("¡Gracias por su compra!", props.Text{
			Size: 8, Align: align.Center, Top: 4, Color: colorGray,
		})),
	)
}

// shortID primeros 8 caracteres del UUID, suficientes para el ticket impreso.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
