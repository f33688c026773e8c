package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	appActivity "github.com/playdeck/tabletally/pkg/app/activity"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/playdeck/tabletally/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Starter interface {
	Start(ctx context.Context, req *request.StartSessionRequest, actor string) (*domainSession.Session, error)
}

type starter struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
	tableRepo   cafetable.Repository
	promoRepo   promotion.Repository
	publisher   cache.EventPublisher
	recorder    appActivity.Recorder
	nowFn       func() time.Time
}

func NewStarter(
	logger *logrus.Logger,
	sessionRepo domainSession.Repository,
	tableRepo cafetable.Repository,
	promoRepo promotion.Repository,
	publisher cache.EventPublisher,
	recorder appActivity.Recorder,
) Starter {
	return &starter{
		logger:      logger,
		sessionRepo: sessionRepo,
		tableRepo:   tableRepo,
		promoRepo:   promoRepo,
		publisher:   publisher,
		recorder:    recorder,
		nowFn:       time.Now,
	}
}

func (s *starter) Start(ctx context.Context, req *request.StartSessionRequest, actor string) (*domainSession.Session, error) {
	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		return nil, fmt.Errorf("invalid table id: %w", err)
	}

	table, err := s.tableRepo.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	active, err := s.sessionRepo.ActiveForTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrTableOccupied
	}

	now := s.nowFn()

	var promoID *uuid.UUID
	if req.PromoID != "" {
		id, err := uuid.Parse(req.PromoID)
		if err != nil {
			return nil, fmt.Errorf("invalid promo id: %w", err)
		}
		promo, err := s.promoRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		// Window check happens here, at attachment time only. The promo's
		// stored prices then apply for the whole session.
		if !promo.ActiveAt(now) {
			return nil, domain.ErrPromotionInactive
		}
		promoID = &id
	}

	var customerID uuid.UUID
	if req.CustomerID != "" {
		customerID, err = uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer id: %w", err)
		}
	}

	entity := &domainSession.Session{
		ID:         uuid.New(),
		TableID:    tableID,
		CustomerID: customerID,
		Capacity:   req.Capacity,
		PromoID:    promoID,
		Status:     domainSession.StatusActive,
		StartedAt:  now,
	}

	if err := s.sessionRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	if err := s.tableRepo.SetStatus(ctx, tableID, cafetable.StatusOccupied); err != nil {
		s.logger.WithError(err).WithField("table_id", tableID).Error("failed to mark table occupied")
	}

	prometheus.ActiveSessions.Inc()
	s.recorder.Record(ctx, actor, activity.ActionSessionStarted, "session", entity.ID,
		fmt.Sprintf("table %s, %d people", table.Label, entity.Capacity))

	s.publishChange(ctx, entity)

	return entity, nil
}

func (s *starter) publishChange(ctx context.Context, entity *domainSession.Session) {
	ev := event.SessionChangedEvent{
		SessionID: entity.ID.String(),
		TableID:   entity.TableID.String(),
		Status:    entity.Status,
	}
	if err := s.publisher.Publish(ctx, channel.FloorEvents, ev); err != nil {
		s.logger.WithError(err).Warn("failed to publish session change event")
	}
}
