package http

import (
	"github.com/gofiber/fiber/v2"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
)

type listSessionsHandler struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
}

func NewListSessionsHandler(logger *logrus.Logger, sessionRepo domainSession.Repository) Handler {
	return &listSessionsHandler{
		logger:      logger,
		sessionRepo: sessionRepo,
	}
}

func (h *listSessionsHandler) Handle(c *fiber.Ctx) error {
	status := c.Query("status")
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	sessions, err := h.sessionRepo.List(c.Context(), status, offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list sessions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}
