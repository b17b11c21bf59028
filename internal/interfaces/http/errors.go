package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/papeleria-pos/internal/application/dto"
	"github.com/tu-usuario/papeleria-pos/internal/domain"
)

// domainError traduce errores de dominio a respuestas HTTP. Los handlers
// lo usan como último paso de su manejo de errores.
func domainError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		// El mensaje viaja tal cual al frontend
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: stockErr.Error(),
			Code:  "INSUFFICIENT_STOCK",
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "datos inválidos",
			Code:  "VALIDATION",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "recurso no encontrado",
			Code:  "NOT_FOUND",
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: "el código ya existe",
			Code:  "DUPLICATE",
		})
	case errors.Is(err, domain.ErrProductReferenced):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: "el producto tiene movimientos asociados",
			Code:  "REFERENCED",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "INTERNAL",
		})
	}
}
