package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/game"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type createGameHandler struct {
	logger *logrus.Logger
	repo   game.Repository
}

func NewCreateGameHandler(logger *logrus.Logger, repo game.Repository) Handler {
	return &createGameHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *createGameHandler) Handle(c *fiber.Ctx) error {
	var req request.GameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity := &game.Game{
		Title:      req.Title,
		MinPlayers: req.MinPlayers,
		MaxPlayers: req.MaxPlayers,
		Shelf:      req.Shelf,
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create game")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
