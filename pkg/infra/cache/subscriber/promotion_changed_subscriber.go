package subscriber

import (
	"context"

	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type PromotionChangedSubscriber struct {
	logger *logrus.Logger
	cache  cache.Client
}

func NewPromotionChangedSubscriber(
	logger *logrus.Logger,
	c cache.Client,
) cache.EventSubscriber[event.PromotionChangedEvent] {
	return &PromotionChangedSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s PromotionChangedSubscriber) OnEvent(ctx context.Context, evt event.PromotionChangedEvent) error {
	s.logger.WithField("promotionID", evt.PromotionID).Debug("invalidating promotion cache")

	if err := s.cache.InvalidatePromotion(ctx, evt.PromotionID); err != nil {
		s.logger.WithError(err).Warn("failed to delete promotion from redis cache")
	}

	return nil
}
