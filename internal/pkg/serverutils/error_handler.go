package serverutils

import (
	"errors"

	"catalog-chat-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into the
// standard response envelope. Most chat-pipeline failures never reach here
// because the service degrades the reply instead; what does arrive is mapped
// by error type.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var (
			validationErr  *apperror.ValidationError
			externalErr    *apperror.ExternalServiceError
			timeoutErr     *apperror.QueryTimeoutError
			tooLargeErr    *apperror.QueryTooLargeError
			persistenceErr *apperror.PersistenceError
			fiberErr       *fiber.Error
		)

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
		case errors.As(err, &tooLargeErr):
			return ctx.Status(fiber.StatusRequestEntityTooLarge).
				JSON(ErrorResponse(fiber.StatusRequestEntityTooLarge, tooLargeErr.Error()))
		case errors.As(err, &timeoutErr):
			return ctx.Status(fiber.StatusGatewayTimeout).
				JSON(ErrorResponse(fiber.StatusGatewayTimeout, timeoutErr.Error()))
		case errors.As(err, &externalErr):
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, externalErr.Error()))
		case errors.As(err, &persistenceErr):
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, "failed to persist chat data"))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
