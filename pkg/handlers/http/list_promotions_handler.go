package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/sirupsen/logrus"
)

type listPromotionsHandler struct {
	logger *logrus.Logger
	repo   promotion.Repository
}

func NewListPromotionsHandler(logger *logrus.Logger, repo promotion.Repository) Handler {
	return &listPromotionsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listPromotionsHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	promos, err := h.repo.List(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list promotions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(promos)
}
