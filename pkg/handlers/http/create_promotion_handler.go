package http

import (
	"github.com/gofiber/fiber/v2"
	appActivity "github.com/playdeck/tabletally/pkg/app/activity"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type createPromotionHandler struct {
	logger    *logrus.Logger
	repo      promotion.Repository
	publisher cache.EventPublisher
	recorder  appActivity.Recorder
}

func NewCreatePromotionHandler(
	logger *logrus.Logger,
	repo promotion.Repository,
	publisher cache.EventPublisher,
	recorder appActivity.Recorder,
) Handler {
	return &createPromotionHandler{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		recorder:  recorder,
	}
}

func (h *createPromotionHandler) Handle(c *fiber.Ctx) error {
	var req request.PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity := &promotion.Promotion{
		Name:           req.Name,
		Description:    req.Description,
		FirstHourPrice: req.FirstHourPrice,
		ExtraHourPrice: req.ExtraHourPrice,
		IsActive:       true,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create promotion")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.recorder.Record(c.Context(), actorFromContext(c), activity.ActionPromotionCreated, "promotion", entity.ID, entity.Name)
	if err := h.publisher.Publish(c.Context(), channel.FloorEvents, event.PromotionChangedEvent{PromotionID: entity.ID.String()}); err != nil {
		h.logger.WithError(err).Warn("failed to publish promotion changed event")
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
