package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	appActivity "github.com/playdeck/tabletally/pkg/app/activity"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/playdeck/tabletally/pkg/infra/prometheus"
	"github.com/playdeck/tabletally/pkg/infra/receipt"
	"github.com/sirupsen/logrus"
)

var ErrOverrideNoteRequired = errors.New("settling a different amount than computed requires an override note")

// Settlement is what the settler hands back to the caller: the frozen
// session plus the payment record created for it.
type Settlement struct {
	Session *domainSession.Session `json:"session"`
	Payment *payment.Payment       `json:"payment"`
}

type Settler interface {
	Settle(ctx context.Context, id uuid.UUID, req *request.EndSessionRequest, actor string) (*Settlement, error)
}

type settler struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
	tableRepo   cafetable.Repository
	paymentRepo payment.Repository
	schedules   ScheduleResolver
	publisher   cache.EventPublisher
	recorder    appActivity.Recorder
	notifier    receipt.Notifier
	nowFn       func() time.Time
}

func NewSettler(
	logger *logrus.Logger,
	sessionRepo domainSession.Repository,
	tableRepo cafetable.Repository,
	paymentRepo payment.Repository,
	schedules ScheduleResolver,
	publisher cache.EventPublisher,
	recorder appActivity.Recorder,
	notifier receipt.Notifier,
) Settler {
	return &settler{
		logger:      logger,
		sessionRepo: sessionRepo,
		tableRepo:   tableRepo,
		paymentRepo: paymentRepo,
		schedules:   schedules,
		publisher:   publisher,
		recorder:    recorder,
		notifier:    notifier,
		nowFn:       time.Now,
	}
}

// Settle freezes a session at the current instant. The persisted TotalCost
// and Hours are exactly what the billing engine reports for now = endedAt;
// the payment records both the charged and the computed figure so overrides
// stay visible.
func (s *settler) Settle(ctx context.Context, id uuid.UUID, req *request.EndSessionRequest, actor string) (*Settlement, error) {
	entity, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransitionTo(domainSession.StatusCompleted) {
		return nil, domain.ErrSessionNotActive
	}

	endedAt := s.nowFn()
	sched := s.schedules.Resolve(ctx, entity)
	quote := billing.Compute(entity.StartedAt, endedAt, entity.Capacity, sched)

	total := quote.CurrentCost
	overrideNote := ""
	if req.TotalAmount != nil && *req.TotalAmount != quote.CurrentCost {
		if req.OverrideNote == "" {
			return nil, ErrOverrideNoteRequired
		}
		total = *req.TotalAmount
		overrideNote = req.OverrideNote
	}

	cash, card, online := req.CashAmount, req.CardAmount, req.OnlineAmount
	if cash == 0 && card == 0 && online == 0 {
		cash = total
	}

	pay := &payment.Payment{
		SessionID:      entity.ID,
		CashAmount:     cash,
		CardAmount:     card,
		OnlineAmount:   online,
		TotalAmount:    total,
		ComputedAmount: quote.CurrentCost,
		OverrideNote:   overrideNote,
	}
	if err := pay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentSplitBroken, err)
	}

	entity.Status = domainSession.StatusCompleted
	entity.EndedAt = &endedAt
	entity.TotalCost = total
	entity.Hours = quote.HoursBillable

	if err := s.sessionRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, pay); err != nil {
		return nil, err
	}

	if err := s.tableRepo.SetStatus(ctx, entity.TableID, cafetable.StatusFree); err != nil {
		s.logger.WithError(err).WithField("table_id", entity.TableID).Error("failed to free table")
	}

	prometheus.ActiveSessions.Dec()
	prometheus.SessionsSettledTotal.Inc()
	prometheus.RevenueTotal.WithLabelValues("cash").Add(pay.CashAmount)
	prometheus.RevenueTotal.WithLabelValues("card").Add(pay.CardAmount)
	prometheus.RevenueTotal.WithLabelValues("online").Add(pay.OnlineAmount)

	s.recorder.Record(ctx, actor, activity.ActionSessionSettled, "session", entity.ID,
		fmt.Sprintf("total %.2f (%s)", total, quote.Breakdown))

	s.publishChange(ctx, entity)
	s.notifier.SettlementRecorded(entity, pay)

	return &Settlement{Session: entity, Payment: pay}, nil
}

func (s *settler) publishChange(ctx context.Context, entity *domainSession.Session) {
	ev := event.SessionChangedEvent{
		SessionID: entity.ID.String(),
		TableID:   entity.TableID.String(),
		Status:    entity.Status,
	}
	if err := s.publisher.Publish(ctx, channel.FloorEvents, ev); err != nil {
		s.logger.WithError(err).Warn("failed to publish session change event")
	}
}
