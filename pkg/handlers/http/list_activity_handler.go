package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/sirupsen/logrus"
)

type listActivityHandler struct {
	logger *logrus.Logger
	repo   activity.Repository
}

func NewListActivityHandler(logger *logrus.Logger, repo activity.Repository) Handler {
	return &listActivityHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listActivityHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := h.repo.List(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list activity entries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}
