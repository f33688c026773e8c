package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appActivity "github.com/playdeck/tabletally/pkg/app/activity"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type updatePromotionHandler struct {
	logger    *logrus.Logger
	repo      promotion.Repository
	cache     cache.Client
	publisher cache.EventPublisher
	recorder  appActivity.Recorder
}

func NewUpdatePromotionHandler(
	logger *logrus.Logger,
	repo promotion.Repository,
	cacheClient cache.Client,
	publisher cache.EventPublisher,
	recorder appActivity.Recorder,
) Handler {
	return &updatePromotionHandler{
		logger:    logger,
		repo:      repo,
		cache:     cacheClient,
		publisher: publisher,
		recorder:  recorder,
	}
}

// Handle edits a promotion. Price changes apply to sessions started after
// the edit; running sessions keep the schedule they attached at start.
func (h *updatePromotionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("promotion_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid promotion ID"})
	}

	var req request.PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch promotion")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	entity.Name = req.Name
	entity.Description = req.Description
	entity.FirstHourPrice = req.FirstHourPrice
	entity.ExtraHourPrice = req.ExtraHourPrice
	entity.StartDate = req.StartDate
	entity.EndDate = req.EndDate
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update promotion")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.cache.InvalidatePromotion(c.Context(), entity.ID.String()); err != nil {
		h.logger.WithError(err).Warn("failed to invalidate promotion cache")
	}
	h.recorder.Record(c.Context(), actorFromContext(c), activity.ActionPromotionUpdated, "promotion", entity.ID, entity.Name)
	if err := h.publisher.Publish(c.Context(), channel.FloorEvents, event.PromotionChangedEvent{PromotionID: entity.ID.String()}); err != nil {
		h.logger.WithError(err).Warn("failed to publish promotion changed event")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
