package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appSession "github.com/playdeck/tabletally/pkg/app/session"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type startSessionHandler struct {
	logger  *logrus.Logger
	starter appSession.Starter
}

func NewStartSessionHandler(logger *logrus.Logger, starter appSession.Starter) Handler {
	return &startSessionHandler{
		logger:  logger,
		starter: starter,
	}
}

// Handle opens a session on a free table. The promotion window is checked
// here, once; the attached prices then hold for the session's lifetime.
func (h *startSessionHandler) Handle(c *fiber.Ctx) error {
	var req request.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if req.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "capacity must be at least 1"})
	}

	entity, err := h.starter.Start(c.Context(), &req, actorFromContext(c))
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrTableOccupied), errors.Is(err, domain.ErrPromotionInactive):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			h.logger.WithError(err).Error("failed to start session")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
