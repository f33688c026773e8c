package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	appSession "github.com/playdeck/tabletally/pkg/app/session"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
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

type mockStarter struct {
	mock.Mock
}

func (m *mockStarter) Start(ctx context.Context, req *request.StartSessionRequest, actor string) (*domainSession.Session, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainSession.Session), args.Error(1)
}

type mockSettler struct {
	mock.Mock
}

func (m *mockSettler) Settle(ctx context.Context, id uuid.UUID, req *request.EndSessionRequest, actor string) (*appSession.Settlement, error) {
	args := m.Called(ctx, id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appSession.Settlement), args.Error(1)
}

type mockCanceller struct {
	mock.Mock
}

func (m *mockCanceller) Cancel(ctx context.Context, id uuid.UUID, reason, actor string) (*domainSession.Session, error) {
	args := m.Called(ctx, id, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainSession.Session), args.Error(1)
}

type stubScheduleResolver struct {
	sched billing.PriceSchedule
}

func (s *stubScheduleResolver) Resolve(ctx context.Context, _ *domainSession.Session) billing.PriceSchedule {
	return s.sched
}
