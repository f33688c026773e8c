package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/sirupsen/logrus"
)

type getTableHandler struct {
	logger *logrus.Logger
	repo   cafetable.Repository
}

func NewGetTableHandler(logger *logrus.Logger, repo cafetable.Repository) Handler {
	return &getTableHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getTableHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("table_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid table ID"})
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch table")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
