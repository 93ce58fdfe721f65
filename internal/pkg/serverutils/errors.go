package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is an error with an HTTP status, safe to show to API clients.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// ErrorHandlerMiddleware turns handler errors into the JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

// WriteError maps err to a status code and JSON body.
func WriteError(ctx *fiber.Ctx, err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(&ValidationErrorResponse{
			Success: false,
			Code:    fiber.StatusBadRequest,
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Code, appErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}
