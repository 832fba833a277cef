// Package middleware holds fiber middleware, most importantly the central
// error handler that turns domain errors into HTTP responses.
package middleware

import (
	"errors"

	"examforge/internal/domain"
	"examforge/internal/dto"
	"examforge/internal/logger"
	"examforge/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// genericServerMessage is the only text a client sees for server-side
// failures. Provider and stack detail stays in the logs, keyed by errorId.
const genericServerMessage = "Something went wrong while processing the request. Please try again."

// validationErrorResponse lists every invalid field of a rejected request.
type validationErrorResponse struct {
	Error   string                   `json:"error"`
	Details []domain.ValidationError `json:"details"`
}

// ErrorHandler builds the app-wide fiber error handler. Client errors keep
// their specific message; 5xx responses are replaced by a generic message
// plus a correlation id that is also written to the log.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusBadRequest).JSON(validationErrorResponse{
				Error:   "Request validation failed",
				Details: verrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := statusForCode(domainErr.Code)
			if status >= fiber.StatusInternalServerError {
				return serverError(c, log, status, err)
			}
			return c.Status(status).JSON(dto.ErrorResponse{Error: domainErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code >= fiber.StatusInternalServerError {
				return serverError(c, log, fiberErr.Code, err)
			}
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
		}

		return serverError(c, log, fiber.StatusInternalServerError, err)
	}
}

func serverError(c *fiber.Ctx, log *zap.Logger, status int, err error) error {
	errorID := util.NewULID()
	log.Error("request failed",
		zap.String("errorId", errorID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err))
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   genericServerMessage,
		ErrorID: errorID,
	})
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return fiber.StatusBadRequest
	case domain.CodeNotFound:
		return fiber.StatusNotFound
	case domain.CodeUpstreamCall, domain.CodeMalformedResponse,
		domain.CodeInvalidEvaluation, domain.CodeInvalidGeneration, domain.CodeInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
