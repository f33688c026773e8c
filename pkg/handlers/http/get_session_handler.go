package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
)

type getSessionHandler struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
}

func NewGetSessionHandler(logger *logrus.Logger, sessionRepo domainSession.Repository) Handler {
	return &getSessionHandler{
		logger:      logger,
		sessionRepo: sessionRepo,
	}
}

func (h *getSessionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	entity, err := h.sessionRepo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch session")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
