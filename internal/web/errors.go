package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authservice "github.com/yardlineiq/picksserver/auth/service"
	"github.com/yardlineiq/picksserver/internal/domain"
)

// handleError maps service errors to statuses. Anything unrecognized
// becomes a 500 with the detail kept out of the response.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(errorResponse{Error: fiberErr.Message})
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPackage),
		errors.Is(err, domain.ErrInvalidPick),
		errors.Is(err, domain.ErrPaymentNotCompleted):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, authservice.ErrNotAuthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Error: "unauthorized"})
	case errors.Is(err, authservice.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(errorResponse{Error: "forbidden"})
	case errors.Is(err, domain.ErrPickNotFound),
		errors.Is(err, domain.ErrSubscriberNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPickResolved):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPaymentVerificationTimeout):
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: err.Error()})
	default:
		s.log.WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"})
	}
}
