package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	appActivity "github.com/playdeck/tabletally/pkg/app/activity"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/playdeck/tabletally/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Canceller interface {
	Cancel(ctx context.Context, id uuid.UUID, reason, actor string) (*domainSession.Session, error)
}

type canceller struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
	tableRepo   cafetable.Repository
	publisher   cache.EventPublisher
	recorder    appActivity.Recorder
	nowFn       func() time.Time
}

func NewCanceller(
	logger *logrus.Logger,
	sessionRepo domainSession.Repository,
	tableRepo cafetable.Repository,
	publisher cache.EventPublisher,
	recorder appActivity.Recorder,
) Canceller {
	return &canceller{
		logger:      logger,
		sessionRepo: sessionRepo,
		tableRepo:   tableRepo,
		publisher:   publisher,
		recorder:    recorder,
		nowFn:       time.Now,
	}
}

// Cancel discards a session without billing. Cancelled sessions never reach
// the payment store and never count toward revenue.
func (c *canceller) Cancel(ctx context.Context, id uuid.UUID, reason, actor string) (*domainSession.Session, error) {
	entity, err := c.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransitionTo(domainSession.StatusCancelled) {
		return nil, domain.ErrSessionNotActive
	}

	endedAt := c.nowFn()
	entity.Status = domainSession.StatusCancelled
	entity.EndedAt = &endedAt
	entity.TotalCost = 0
	entity.Hours = 0

	if err := c.sessionRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	if err := c.tableRepo.SetStatus(ctx, entity.TableID, cafetable.StatusFree); err != nil {
		c.logger.WithError(err).WithField("table_id", entity.TableID).Error("failed to free table")
	}

	prometheus.ActiveSessions.Dec()
	prometheus.SessionsCancelledTotal.Inc()

	c.recorder.Record(ctx, actor, activity.ActionSessionCancelled, "session", entity.ID, reason)

	ev := event.SessionChangedEvent{
		SessionID: entity.ID.String(),
		TableID:   entity.TableID.String(),
		Status:    entity.Status,
	}
	if err := c.publisher.Publish(ctx, channel.FloorEvents, ev); err != nil {
		c.logger.WithError(err).Warn("failed to publish session change event")
	}

	return entity, nil
}
