package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain"
)

// respond envuelve data en el sobre {data, message, success:true}.
func respond[T any](c *fiber.Ctx, status int, data T, message string) error {
	return c.Status(status).JSON(dto.OK(data, message))
}

// fail traduce errores de dominio a status HTTP + dto.ErrorResponse.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTotalMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOTAL_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), domain.KindOf(err) == domain.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrInvalidCredentials.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
