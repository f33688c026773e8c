package analytics

import (
	"context"
	"time"

	"github.com/playdeck/tabletally/pkg/domain/payment"
	"github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RevenueSummary aggregates settled revenue over a period. Only completed
// sessions contribute; cancelled sessions carry no payment and are excluded
// by the queries themselves.
type RevenueSummary struct {
	From              time.Time            `json:"from"`
	To                time.Time            `json:"to"`
	SessionCount      int                  `json:"session_count"`
	TotalRevenue      float64              `json:"total_revenue"`
	AveragePerSession float64              `json:"average_per_session"`
	TotalHours        float64              `json:"total_hours"`
	ByMethod          payment.MethodTotals `json:"by_method"`
}

type Reporter interface {
	Revenue(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
}

type reporter struct {
	logger      *logrus.Logger
	sessionRepo session.Repository
	paymentRepo payment.Repository
}

func NewReporter(
	logger *logrus.Logger,
	sessionRepo session.Repository,
	paymentRepo payment.Repository,
) Reporter {
	return &reporter{
		logger:      logger,
		sessionRepo: sessionRepo,
		paymentRepo: paymentRepo,
	}
}

func (r *reporter) Revenue(ctx context.Context, from, to time.Time) (*RevenueSummary, error) {
	var (
		sessions []session.Session
		totals   payment.MethodTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = r.sessionRepo.CompletedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = r.paymentRepo.TotalsByMethod(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &RevenueSummary{From: from, To: to, SessionCount: len(sessions)}
	for _, s := range sessions {
		summary.TotalRevenue += s.TotalCost
		summary.TotalHours += s.Hours
	}
	if summary.SessionCount > 0 {
		summary.AveragePerSession = summary.TotalRevenue / float64(summary.SessionCount)
	}
	summary.ByMethod = totals

	return summary, nil
}
