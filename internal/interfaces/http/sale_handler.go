package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/application/sales"
	"github.com/tu-usuario/papeleria-pos/pkg/validator"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	ticketUC *sales.TicketUseCase
}

// NewSaleHandler construye el handler. ticketUC puede ser nil si el servicio
// se despliega sin generación de tickets.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, ticketUC *sales.TicketUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, ticketUC: ticketUC}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y fotografía el precio de venta por línea. La
// @Description  operación es atómica: si una línea falla no se persiste nada.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "validación fallida: " + fields[0].Field,
			Code:  "VALIDATION",
		})
	}
	out, err := h.createUC.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas (fecha descendente) con sus líneas
// @Tags         ventas
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	out, err := h.createUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.createUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venta no encontrada", Code: "NOT_FOUND"})
	}
	return c.JSON(out)
}

// Ticket godoc
// @Summary      Descargar ticket PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/ticket [get]
func (h *SaleHandler) Ticket(c *fiber.Ctx) error {
	if h.ticketUC == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "tickets deshabilitados", Code: "NOT_FOUND"})
	}
	pdfBytes, err := h.ticketUC.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket.pdf"`)
	return c.Send(pdfBytes)
}
