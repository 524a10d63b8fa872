package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/application/notify"
	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/validation"
)

// writeError traduce un error de los casos de uso a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	if f, ok := validation.AsFailure(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:       "VALIDATION",
			Message:    f.Message,
			Title:      f.Title,
			Field:      f.Field,
			FieldGroup: string(f.Group),
			Severity:   string(f.Severity),
		})
	}
	switch {
	case errors.Is(err, domain.ErrUnexpected):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: notify.UnexpectedMessage})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrSequenceExhausted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEQUENCE_EXHAUSTED", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: notify.UnexpectedMessage})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
