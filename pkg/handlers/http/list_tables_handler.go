package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/sirupsen/logrus"
)

type listTablesHandler struct {
	logger *logrus.Logger
	repo   cafetable.Repository
}

func NewListTablesHandler(logger *logrus.Logger, repo cafetable.Repository) Handler {
	return &listTablesHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listTablesHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	tables, err := h.repo.List(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list tables")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(tables)
}
