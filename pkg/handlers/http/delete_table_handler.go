package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/sirupsen/logrus"
)

type deleteTableHandler struct {
	logger *logrus.Logger
	repo   cafetable.Repository
}

func NewDeleteTableHandler(logger *logrus.Logger, repo cafetable.Repository) Handler {
	return &deleteTableHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle removes a table. Occupied tables cannot be deleted; the running
// session must be settled or cancelled first.
func (h *deleteTableHandler) Handle(c *fiber.Ctx) error {
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
	if entity.Status == cafetable.StatusOccupied {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "table is occupied"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.WithError(err).Error("failed to delete table")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
