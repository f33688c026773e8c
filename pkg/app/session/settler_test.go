package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func activeSession(startedAt time.Time, capacity int) *domainSession.Session {
	return &domainSession.Session{
		ID:        uuid.New(),
		TableID:   uuid.New(),
		Capacity:  capacity,
		Status:    domainSession.StatusActive,
		StartedAt: startedAt,
	}
}

func setupSettler(
	sessionRepo *mockSessionRepository,
	tableRepo *mockTableRepository,
	paymentRepo *mockPaymentRepository,
	schedules *mockScheduleResolver,
	publisher *mockEventPublisher,
	recorder *mockRecorder,
	notifier *mockNotifier,
	now time.Time,
) Settler {
	s := NewSettler(testLogger(), sessionRepo, tableRepo, paymentRepo, schedules, publisher, recorder, notifier)
	s.(*settler).nowFn = func() time.Time { return now }
	return s
}

func TestSettler_Settle_FreezesComputedTotal(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)
	paymentRepo := new(mockPaymentRepository)
	schedules := new(mockScheduleResolver)
	publisher := new(mockEventPublisher)
	recorder := new(mockRecorder)
	notifier := new(mockNotifier)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	now := start.Add(100 * time.Minute)
	entity := activeSession(start, 2)

	settlerSvc := setupSettler(sessionRepo, tableRepo, paymentRepo, schedules, publisher, recorder, notifier, now)

	ctx := context.Background()
	sessionRepo.On("Get", ctx, entity.ID).Return(entity, nil)
	schedules.On("Resolve", ctx, entity).Return(billing.DefaultSchedule())
	sessionRepo.On("Update", ctx, entity).Return(nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil)
	tableRepo.On("SetStatus", ctx, entity.TableID, cafetable.StatusFree).Return(nil)
	recorder.On("Record", ctx, "alice", activity.ActionSessionSettled, "session", entity.ID, mock.AnythingOfType("string")).Return()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil)
	notifier.On("SettlementRecorded", entity, mock.AnythingOfType("*payment.Payment")).Return()

	result, err := settlerSvc.Settle(ctx, entity.ID, &request.EndSessionRequest{}, "alice")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	// 100 minutes at default prices: first hour plus one extra hour, 2 people
	assert.Equal(t, 120.0, result.Session.TotalCost)
	assert.Equal(t, domainSession.StatusCompleted, result.Session.Status)
	assert.NotNil(t, result.Session.EndedAt)
	assert.Equal(t, now, *result.Session.EndedAt)
	assert.InDelta(t, 100.0/60.0, result.Session.Hours, 0.01)
	// no split given: everything lands on cash
	assert.Equal(t, 120.0, result.Payment.CashAmount)
	assert.Equal(t, 120.0, result.Payment.TotalAmount)
	assert.Equal(t, 120.0, result.Payment.ComputedAmount)
	assert.Empty(t, result.Payment.OverrideNote)
	sessionRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSettler_Settle_OverrideRequiresNote(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	schedules := new(mockScheduleResolver)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	now := start.Add(45 * time.Minute)
	entity := activeSession(start, 2)

	settlerSvc := setupSettler(sessionRepo, new(mockTableRepository), new(mockPaymentRepository), schedules,
		new(mockEventPublisher), new(mockRecorder), new(mockNotifier), now)

	ctx := context.Background()
	sessionRepo.On("Get", ctx, entity.ID).Return(entity, nil)
	schedules.On("Resolve", ctx, entity).Return(billing.DefaultSchedule())

	override := 50.0
	_, err := settlerSvc.Settle(ctx, entity.ID, &request.EndSessionRequest{TotalAmount: &override}, "alice")

	assert.ErrorIs(t, err, ErrOverrideNoteRequired)
}

func TestSettler_Settle_OverrideWithNote(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)
	paymentRepo := new(mockPaymentRepository)
	schedules := new(mockScheduleResolver)
	publisher := new(mockEventPublisher)
	recorder := new(mockRecorder)
	notifier := new(mockNotifier)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	now := start.Add(45 * time.Minute)
	entity := activeSession(start, 2)

	settlerSvc := setupSettler(sessionRepo, tableRepo, paymentRepo, schedules, publisher, recorder, notifier, now)

	ctx := context.Background()
	sessionRepo.On("Get", ctx, entity.ID).Return(entity, nil)
	schedules.On("Resolve", ctx, entity).Return(billing.DefaultSchedule())
	sessionRepo.On("Update", ctx, entity).Return(nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil)
	tableRepo.On("SetStatus", ctx, entity.TableID, cafetable.StatusFree).Return(nil)
	recorder.On("Record", ctx, "alice", activity.ActionSessionSettled, "session", entity.ID, mock.AnythingOfType("string")).Return()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil)
	notifier.On("SettlementRecorded", entity, mock.AnythingOfType("*payment.Payment")).Return()

	override := 50.0
	result, err := settlerSvc.Settle(ctx, entity.ID, &request.EndSessionRequest{
		TotalAmount:  &override,
		OverrideNote: "regular discount",
	}, "alice")

	assert.NoError(t, err)
	assert.Equal(t, 50.0, result.Session.TotalCost)
	assert.Equal(t, 50.0, result.Payment.TotalAmount)
	// computed figure survives next to the override
	assert.Equal(t, 60.0, result.Payment.ComputedAmount)
	assert.Equal(t, "regular discount", result.Payment.OverrideNote)
}

func TestSettler_Settle_BrokenSplitRejected(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	schedules := new(mockScheduleResolver)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	now := start.Add(45 * time.Minute)
	entity := activeSession(start, 2)

	settlerSvc := setupSettler(sessionRepo, new(mockTableRepository), new(mockPaymentRepository), schedules,
		new(mockEventPublisher), new(mockRecorder), new(mockNotifier), now)

	ctx := context.Background()
	sessionRepo.On("Get", ctx, entity.ID).Return(entity, nil)
	schedules.On("Resolve", ctx, entity).Return(billing.DefaultSchedule())

	// computed total is 60, split sums to 50
	_, err := settlerSvc.Settle(ctx, entity.ID, &request.EndSessionRequest{
		CashAmount: 30,
		CardAmount: 20,
	}, "alice")

	assert.ErrorIs(t, err, domain.ErrPaymentSplitBroken)
}

func TestSettler_Settle_AlreadyCompleted(t *testing.T) {
	sessionRepo := new(mockSessionRepository)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	ended := start.Add(time.Hour)
	entity := activeSession(start, 2)
	entity.Status = domainSession.StatusCompleted
	entity.EndedAt = &ended

	settlerSvc := setupSettler(sessionRepo, new(mockTableRepository), new(mockPaymentRepository), new(mockScheduleResolver),
		new(mockEventPublisher), new(mockRecorder), new(mockNotifier), ended)

	ctx := context.Background()
	sessionRepo.On("Get", ctx, entity.ID).Return(entity, nil)

	_, err := settlerSvc.Settle(ctx, entity.ID, &request.EndSessionRequest{}, "alice")

	assert.ErrorIs(t, err, domain.ErrSessionNotActive)
}

func TestSettler_Settle_GraceSettlesAtZero(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)
	paymentRepo := new(mockPaymentRepository)
	schedules := new(mockScheduleResolver)
	publisher := new(mockEventPublisher)
	recorder := new(mockRecorder)
	notifier := new(mockNotifier)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	now := start.Add(20 * time.Minute)
	entity := activeSession(start, 4)

	settlerSvc := setupSettler(sessionRepo, tableRepo, paymentRepo, schedules, publisher, recorder, notifier, now)

	ctx := context.Background()
	sessionRepo.On("Get", ctx, entity.ID).Return(entity, nil)
	schedules.On("Resolve", ctx, entity).Return(billing.DefaultSchedule())
	sessionRepo.On("Update", ctx, entity).Return(nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil)
	tableRepo.On("SetStatus", ctx, entity.TableID, cafetable.StatusFree).Return(nil)
	recorder.On("Record", ctx, "", activity.ActionSessionSettled, "session", entity.ID, mock.AnythingOfType("string")).Return()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil)
	notifier.On("SettlementRecorded", entity, mock.AnythingOfType("*payment.Payment")).Return()

	result, err := settlerSvc.Settle(ctx, entity.ID, &request.EndSessionRequest{}, "")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.Session.TotalCost)
	assert.Equal(t, 0.0, result.Payment.TotalAmount)
}
