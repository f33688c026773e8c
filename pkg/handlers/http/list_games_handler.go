package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/game"
	"github.com/sirupsen/logrus"
)

type listGamesHandler struct {
	logger *logrus.Logger
	repo   game.Repository
}

func NewListGamesHandler(logger *logrus.Logger, repo game.Repository) Handler {
	return &listGamesHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listGamesHandler) Handle(c *fiber.Ctx) error {
	search := c.Query("search")
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	games, err := h.repo.List(c.Context(), search, offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list games")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(games)
}
