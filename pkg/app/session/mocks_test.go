package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
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

type mockTableRepository struct {
	mock.Mock
}

func (m *mockTableRepository) Create(ctx context.Context, t *cafetable.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTableRepository) Get(ctx context.Context, id uuid.UUID) (*cafetable.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cafetable.Table), args.Error(1)
}

func (m *mockTableRepository) List(ctx context.Context, offset, limit int) ([]cafetable.Table, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cafetable.Table), args.Error(1)
}

func (m *mockTableRepository) Update(ctx context.Context, t *cafetable.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTableRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockPromotionRepository struct {
	mock.Mock
}

func (m *mockPromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPromotionRepository) Get(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Promotion), args.Error(1)
}

func (m *mockPromotionRepository) List(ctx context.Context, offset, limit int) ([]promotion.Promotion, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]promotion.Promotion), args.Error(1)
}

func (m *mockPromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
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

type mockScheduleResolver struct {
	mock.Mock
}

func (m *mockScheduleResolver) Resolve(ctx context.Context, s *domainSession.Session) billing.PriceSchedule {
	args := m.Called(ctx, s)
	return args.Get(0).(billing.PriceSchedule)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, ch channel.Channel, ev event.Event) error {
	args := m.Called(ctx, ch, ev)
	return args.Error(0)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, actor, action, entityType string, entityID uuid.UUID, detail string) {
	m.Called(ctx, actor, action, entityType, entityID, detail)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SettlementRecorded(s *domainSession.Session, p *payment.Payment) {
	m.Called(s, p)
}
