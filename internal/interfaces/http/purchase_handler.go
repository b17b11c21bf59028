package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/application/purchases"
	"github.com/tu-usuario/papeleria-pos/pkg/validator"
)

// PurchaseHandler maneja las peticiones HTTP de compras a proveedores.
type PurchaseHandler struct {
	createUC *purchases.CreatePurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(createUC *purchases.CreatePurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{createUC: createUC}
}

// Create godoc
// @Summary      Registrar compra
// @Description  Incrementa stock por línea con el costo unitario suministrado.
// @Description  La operación es atómica.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Líneas de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
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
// @Summary      Listar compras (fecha descendente) con sus líneas
// @Tags         compras
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.PurchaseResponse
// @Router       /api/compras [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener compra por ID
// @Tags         compras
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.createUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "compra no encontrada", Code: "NOT_FOUND"})
	}
	return c.JSON(out)
}
