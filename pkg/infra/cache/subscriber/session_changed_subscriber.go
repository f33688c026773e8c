package subscriber

import (
	"context"
	"fmt"

	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type SessionChangedSubscriber struct {
	logger *logrus.Logger
	cache  cache.Client
}

func NewSessionChangedSubscriber(
	logger *logrus.Logger,
	c cache.Client,
) cache.EventSubscriber[event.SessionChangedEvent] {
	return &SessionChangedSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s SessionChangedSubscriber) OnEvent(ctx context.Context, evt event.SessionChangedEvent) error {
	s.logger.WithFields(logrus.Fields{
		"sessionID": evt.SessionID,
		"status":    evt.Status,
	}).Debug("invalidating session cache")

	if err := s.cache.InvalidateSession(ctx, evt.SessionID); err != nil {
		s.logger.WithError(err).Warn("failed to delete session from redis cache")
	}

	if evt.TableID != "" {
		if err := s.cache.Delete(ctx, fmt.Sprintf(cache.TableKeyPattern, evt.TableID)); err != nil {
			s.logger.WithError(err).Warn("failed to delete table from redis cache")
		}
	}

	return nil
}
