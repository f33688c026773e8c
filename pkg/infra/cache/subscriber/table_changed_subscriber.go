package subscriber

import (
	"context"
	"fmt"

	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type TableChangedSubscriber struct {
	logger *logrus.Logger
	cache  cache.Client
}

func NewTableChangedSubscriber(
	logger *logrus.Logger,
	c cache.Client,
) cache.EventSubscriber[event.TableChangedEvent] {
	return &TableChangedSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s TableChangedSubscriber) OnEvent(ctx context.Context, evt event.TableChangedEvent) error {
	s.logger.WithFields(logrus.Fields{
		"tableID": evt.TableID,
		"status":  evt.Status,
	}).Debug("invalidating table cache")

	if err := s.cache.Delete(ctx, fmt.Sprintf(cache.TableKeyPattern, evt.TableID)); err != nil {
		s.logger.WithError(err).Warn("failed to delete table from redis cache")
	}

	return nil
}
