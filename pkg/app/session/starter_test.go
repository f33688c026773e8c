package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupStarter(
	sessionRepo *mockSessionRepository,
	tableRepo *mockTableRepository,
	promoRepo *mockPromotionRepository,
	publisher *mockEventPublisher,
	recorder *mockRecorder,
	now time.Time,
) Starter {
	s := NewStarter(testLogger(), sessionRepo, tableRepo, promoRepo, publisher, recorder)
	s.(*starter).nowFn = func() time.Time { return now }
	return s
}

func TestStarter_Start_Success(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)
	promoRepo := new(mockPromotionRepository)
	publisher := new(mockEventPublisher)
	recorder := new(mockRecorder)

	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	table := &cafetable.Table{ID: uuid.New(), Label: "T1", Seats: 6, Status: cafetable.StatusFree}

	starterSvc := setupStarter(sessionRepo, tableRepo, promoRepo, publisher, recorder, now)

	ctx := context.Background()
	tableRepo.On("Get", ctx, table.ID).Return(table, nil)
	sessionRepo.On("ActiveForTable", ctx, table.ID).Return(nil, nil)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*session.Session")).Return(nil)
	tableRepo.On("SetStatus", ctx, table.ID, cafetable.StatusOccupied).Return(nil)
	recorder.On("Record", ctx, "bob", activity.ActionSessionStarted, "session", mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string")).Return()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil)

	result, err := starterSvc.Start(ctx, &request.StartSessionRequest{
		TableID:  table.ID.String(),
		Capacity: 4,
	}, "bob")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, domainSession.StatusActive, result.Status)
	assert.Equal(t, 4, result.Capacity)
	assert.Equal(t, now, result.StartedAt)
	assert.Nil(t, result.PromoID)
	sessionRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
}

func TestStarter_Start_TableOccupied(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)

	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	table := &cafetable.Table{ID: uuid.New(), Label: "T1", Seats: 6, Status: cafetable.StatusOccupied}
	running := activeSession(now.Add(-time.Hour), 2)
	running.TableID = table.ID

	starterSvc := setupStarter(sessionRepo, tableRepo, new(mockPromotionRepository),
		new(mockEventPublisher), new(mockRecorder), now)

	ctx := context.Background()
	tableRepo.On("Get", ctx, table.ID).Return(table, nil)
	sessionRepo.On("ActiveForTable", ctx, table.ID).Return(running, nil)

	_, err := starterSvc.Start(ctx, &request.StartSessionRequest{
		TableID:  table.ID.String(),
		Capacity: 2,
	}, "bob")

	assert.ErrorIs(t, err, domain.ErrTableOccupied)
}

func TestStarter_Start_AttachesActivePromo(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)
	promoRepo := new(mockPromotionRepository)
	publisher := new(mockEventPublisher)
	recorder := new(mockRecorder)

	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	table := &cafetable.Table{ID: uuid.New(), Label: "T2", Seats: 4, Status: cafetable.StatusFree}
	promo := &promotion.Promotion{
		ID:             uuid.New(),
		Name:           "weekday evening",
		FirstHourPrice: 20,
		ExtraHourPrice: 15,
		IsActive:       true,
	}

	starterSvc := setupStarter(sessionRepo, tableRepo, promoRepo, publisher, recorder, now)

	ctx := context.Background()
	tableRepo.On("Get", ctx, table.ID).Return(table, nil)
	sessionRepo.On("ActiveForTable", ctx, table.ID).Return(nil, nil)
	promoRepo.On("Get", ctx, promo.ID).Return(promo, nil)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*session.Session")).Return(nil)
	tableRepo.On("SetStatus", ctx, table.ID, cafetable.StatusOccupied).Return(nil)
	recorder.On("Record", ctx, "bob", activity.ActionSessionStarted, "session", mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string")).Return()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil)

	result, err := starterSvc.Start(ctx, &request.StartSessionRequest{
		TableID:  table.ID.String(),
		Capacity: 3,
		PromoID:  promo.ID.String(),
	}, "bob")

	assert.NoError(t, err)
	assert.NotNil(t, result.PromoID)
	assert.Equal(t, promo.ID, *result.PromoID)
}

func TestStarter_Start_PromoOutsideWindow(t *testing.T) {
	sessionRepo := new(mockSessionRepository)
	tableRepo := new(mockTableRepository)
	promoRepo := new(mockPromotionRepository)

	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	table := &cafetable.Table{ID: uuid.New(), Label: "T3", Seats: 4, Status: cafetable.StatusFree}
	windowEnd := now.Add(-24 * time.Hour)
	promo := &promotion.Promotion{
		ID:             uuid.New(),
		Name:           "expired",
		FirstHourPrice: 20,
		ExtraHourPrice: 15,
		IsActive:       true,
		EndDate:        &windowEnd,
	}

	starterSvc := setupStarter(sessionRepo, tableRepo, promoRepo,
		new(mockEventPublisher), new(mockRecorder), now)

	ctx := context.Background()
	tableRepo.On("Get", ctx, table.ID).Return(table, nil)
	sessionRepo.On("ActiveForTable", ctx, table.ID).Return(nil, nil)
	promoRepo.On("Get", ctx, promo.ID).Return(promo, nil)

	_, err := starterSvc.Start(ctx, &request.StartSessionRequest{
		TableID:  table.ID.String(),
		Capacity: 2,
		PromoID:  promo.ID.String(),
	}, "bob")

	assert.ErrorIs(t, err, domain.ErrPromotionInactive)
}

func TestStarter_Start_InvalidTableID(t *testing.T) {
	starterSvc := setupStarter(new(mockSessionRepository), new(mockTableRepository), new(mockPromotionRepository),
		new(mockEventPublisher), new(mockRecorder), time.Now())

	_, err := starterSvc.Start(context.Background(), &request.StartSessionRequest{
		TableID:  "not-a-uuid",
		Capacity: 2,
	}, "bob")

	assert.Error(t, err)
}
