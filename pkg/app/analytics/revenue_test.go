package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, s *domainSession.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*domainSession.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) List(ctx context.Context, status string, offset, limit int) ([]domainSession.Session, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) ListActive(ctx context.Context) ([]domainSession.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) ActiveForTable(ctx context.Context, tableID uuid.UUID) (*domainSession.Session, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) CompletedBetween(ctx context.Context, from, to time.Time) ([]domainSession.Session, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) Update(ctx context.Context, s *domainSession.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentRepository) Get(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepository) GetBySession(ctx context.Context, sessionID uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepository) List(ctx context.Context, offset, limit int) ([]payment.Payment, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *mockPaymentRepository) TotalsByMethod(ctx context.Context, from, to time.Time) (payment.MethodTotals, error) {
	args := m.Called(ctx, from, to)
	totals, _ := args.Get(0).(payment.MethodTotals)
	return totals, args.Error(1)
}

func TestReporter_Revenue_Aggregates(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	paymentRepo := new(mockPaymentRepository)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	sessions := []domainSession.Session{
		{ID: uuid.New(), TotalCost: 120, Hours: 1.5},
		{ID: uuid.New(), TotalCost: 60, Hours: 0.75},
		{ID: uuid.New(), TotalCost: 0, Hours: 0.4},
	}
	totals := payment.MethodTotals{Cash: 100, Card: 80, Online: 0}

	sessionRepo.On("CompletedBetween", mock.Anything, from, to).Return(sessions, nil)
	paymentRepo.On("TotalsByMethod", mock.Anything, from, to).Return(totals, nil)

	reporter := NewReporter(logger, sessionRepo, paymentRepo)
	summary, err := reporter.Revenue(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.SessionCount)
	assert.Equal(t, 180.0, summary.TotalRevenue)
	assert.InDelta(t, 60.0, summary.AveragePerSession, 0.001)
	assert.InDelta(t, 2.65, summary.TotalHours, 0.001)
	assert.Equal(t, totals, summary.ByMethod)
}

func TestReporter_Revenue_EmptyPeriod(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	paymentRepo := new(mockPaymentRepository)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	sessionRepo.On("CompletedBetween", mock.Anything, from, to).Return([]domainSession.Session{}, nil)
	paymentRepo.On("TotalsByMethod", mock.Anything, from, to).Return(payment.MethodTotals{}, nil)

	reporter := NewReporter(logger, sessionRepo, paymentRepo)
	summary, err := reporter.Revenue(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.SessionCount)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AveragePerSession)
}

func TestReporter_Revenue_QueryFailure(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	paymentRepo := new(mockPaymentRepository)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	boom := errors.New("db down")
	sessionRepo.On("CompletedBetween", mock.Anything, from, to).Return(nil, boom)
	paymentRepo.On("TotalsByMethod", mock.Anything, from, to).Return(payment.MethodTotals{}, nil).Maybe()

	reporter := NewReporter(logger, sessionRepo, paymentRepo)
	_, err := reporter.Revenue(context.Background(), from, to)

	assert.ErrorIs(t, err, boom)
}
