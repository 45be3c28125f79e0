package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintechx/casino/internal/types"
)

// statusFor maps error taxonomy codes to HTTP statuses
func statusFor(code types.ErrorCode) int {
	switch code {
	case types.ErrInvalidSelection:
		return fiber.StatusBadRequest
	case types.ErrInsufficientFunds:
		return fiber.StatusPaymentRequired
	case types.ErrRoundInProgress, types.ErrNoActiveRound, types.ErrInvalidState, types.ErrNotPlayerTurn:
		return fiber.StatusConflict
	case types.ErrGameNotFound:
		return fiber.StatusNotFound
	case types.ErrSessionNotFound:
		return fiber.StatusUnauthorized
	case types.ErrPermissionDenied:
		return fiber.StatusForbidden
	case types.ErrExternalService:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// fail renders an error as the JSON error body
func fail(c *fiber.Ctx, err error) error {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		return c.Status(statusFor(gameErr.Code)).JSON(fiber.Map{
			"code":  gameErr.Code,
			"error": gameErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":  types.ErrInternalError,
		"error": err.Error(),
	})
}
