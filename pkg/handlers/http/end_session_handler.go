package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appSession "github.com/playdeck/tabletally/pkg/app/session"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type endSessionHandler struct {
	logger  *logrus.Logger
	settler appSession.Settler
}

func NewEndSessionHandler(logger *logrus.Logger, settler appSession.Settler) Handler {
	return &endSessionHandler{
		logger:  logger,
		settler: settler,
	}
}

// Handle settles a session: the billing engine is evaluated at the end
// instant and the result is frozen on the session and its payment record.
func (h *endSessionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	var req request.EndSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	settlement, err := h.settler.Settle(c.Context(), id, &req, actorFromContext(c))
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrSessionNotActive):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, appSession.ErrOverrideNoteRequired), errors.Is(err, domain.ErrPaymentSplitBroken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			h.logger.WithError(err).Error("failed to settle session")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(settlement)
}
