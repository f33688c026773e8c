package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/game"
	"github.com/sirupsen/logrus"
)

type deleteGameHandler struct {
	logger *logrus.Logger
	repo   game.Repository
}

func NewDeleteGameHandler(logger *logrus.Logger, repo game.Repository) Handler {
	return &deleteGameHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *deleteGameHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("game_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game ID"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to delete game")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
