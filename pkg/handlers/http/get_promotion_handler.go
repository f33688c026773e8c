package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

type getPromotionHandler struct {
	logger *logrus.Logger
	repo   promotion.Repository
	cache  cache.Client
}

func NewGetPromotionHandler(logger *logrus.Logger, repo promotion.Repository, cacheClient cache.Client) Handler {
	return &getPromotionHandler{
		logger: logger,
		repo:   repo,
		cache:  cacheClient,
	}
}

func (h *getPromotionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("promotion_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid promotion ID"})
	}

	if cached, err := h.cache.GetPromotion(c.Context(), id.String()); err == nil && cached != nil {
		return c.Status(fiber.StatusOK).JSON(cached)
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch promotion")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.cache.SavePromotion(c.Context(), entity); err != nil {
		h.logger.WithError(err).Warn("failed to cache promotion")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
