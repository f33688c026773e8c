package session

import (
	"context"

	"github.com/playdeck/tabletally/pkg/domain/billing"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
)

// ScheduleResolver maps a session to the price schedule it was started
// under. Every consumer of the billing engine (live quote, websocket feed,
// settlement) resolves through here so they can never disagree on rates.
type ScheduleResolver interface {
	Resolve(ctx context.Context, s *domainSession.Session) billing.PriceSchedule
}

type scheduleResolver struct {
	logger    *logrus.Logger
	promoRepo promotion.Repository
}

func NewScheduleResolver(logger *logrus.Logger, promoRepo promotion.Repository) ScheduleResolver {
	return &scheduleResolver{
		logger:    logger,
		promoRepo: promoRepo,
	}
}

// Resolve returns the promo's stored prices when one is attached, falling
// back to the default schedule when the promo cannot be loaded. The validity
// window is only checked at attachment time; once attached the prices stick
// for the session's whole lifetime.
func (r *scheduleResolver) Resolve(ctx context.Context, s *domainSession.Session) billing.PriceSchedule {
	if s.PromoID == nil {
		return billing.DefaultSchedule()
	}
	promo, err := r.promoRepo.Get(ctx, *s.PromoID)
	if err != nil {
		r.logger.WithError(err).WithField("promo_id", s.PromoID).
			Warn("failed to load promotion, using default schedule")
		return billing.DefaultSchedule()
	}
	return promo.Schedule()
}
