package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/game"
	"github.com/sirupsen/logrus"
)

type getGameHandler struct {
	logger *logrus.Logger
	repo   game.Repository
}

func NewGetGameHandler(logger *logrus.Logger, repo game.Repository) Handler {
	return &getGameHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getGameHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("game_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game ID"})
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch game")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
