package middleware

import (
	"academia/services"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error response contract shared with the frontend
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// JSON writes a success payload with the given status
func JSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes an error body with the given status
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Message: message})
}

// ValidationErrorResponse writes the field-level errors collected by a
// validator middleware
func ValidationErrorResponse(c *fiber.Ctx, errors map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Message: "Erro de validação.",
		Errors:  errors,
	})
}

// ServiceErrorResponse maps a service error kind onto its HTTP status.
// Anything unrecognized is a 500.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindNotFound:
		status = fiber.StatusNotFound
	case services.KindConflict:
		status = fiber.StatusConflict
	case services.KindBadRequest:
		status = fiber.StatusBadRequest
	}
	return ErrorResponse(c, status, err.Error())
}
