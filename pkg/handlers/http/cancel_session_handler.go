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

type cancelSessionHandler struct {
	logger    *logrus.Logger
	canceller appSession.Canceller
}

func NewCancelSessionHandler(logger *logrus.Logger, canceller appSession.Canceller) Handler {
	return &cancelSessionHandler{
		logger:    logger,
		canceller: canceller,
	}
}

func (h *cancelSessionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	var req request.CancelSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
		}
	}

	entity, err := h.canceller.Cancel(c.Context(), id, req.Reason, actorFromContext(c))
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrSessionNotActive):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			h.logger.WithError(err).Error("failed to cancel session")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
