package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type deletePromotionHandler struct {
	logger    *logrus.Logger
	repo      promotion.Repository
	cache     cache.Client
	publisher cache.EventPublisher
}

func NewDeletePromotionHandler(
	logger *logrus.Logger,
	repo promotion.Repository,
	cacheClient cache.Client,
	publisher cache.EventPublisher,
) Handler {
	return &deletePromotionHandler{
		logger:    logger,
		repo:      repo,
		cache:     cacheClient,
		publisher: publisher,
	}
}

func (h *deletePromotionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("promotion_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid promotion ID"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to delete promotion")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.cache.InvalidatePromotion(c.Context(), id.String()); err != nil {
		h.logger.WithError(err).Warn("failed to invalidate promotion cache")
	}
	if err := h.publisher.Publish(c.Context(), channel.FloorEvents, event.PromotionChangedEvent{PromotionID: id.String(), Deleted: true}); err != nil {
		h.logger.WithError(err).Warn("failed to publish promotion changed event")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
