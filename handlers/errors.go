package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
	"github.com/maualmeyracba/cronoapp-sub001/services"
)

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidArgument:
		return fiber.StatusBadRequest
	case apperrors.KindFailedPrecondition, apperrors.KindGeofence:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindAlreadyExists, apperrors.KindInvalidState:
		return fiber.StatusConflict
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a service error onto an HTTP status plus a stable
// machine-readable code. Internal failures are never echoed to clients.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperrors.KindOf(err)
	message := err.Error()
	if kind == apperrors.KindInternal {
		message = "internal server error"
	}
	return c.Status(statusForKind(kind)).JSON(fiber.Map{
		"error": message,
		"code":  kind.String(),
	})
}

// actorFromLocals converts the authenticated claims installed by the auth
// middleware into the actor identity the services expect.
func actorFromLocals(c *fiber.Ctx) (services.Actor, bool) {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{ID: claims.UserID.Hex(), Role: claims.Role}, true
}
