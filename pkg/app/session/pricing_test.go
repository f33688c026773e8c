package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/stretchr/testify/assert"
)

func TestScheduleResolver_NoPromoUsesDefault(t *testing.T) {
	resolver := NewScheduleResolver(testLogger(), new(mockPromotionRepository))

	sched := resolver.Resolve(context.Background(), activeSession(time.Now(), 2))

	assert.Equal(t, billing.DefaultSchedule(), sched)
}

func TestScheduleResolver_PromoPricesStick(t *testing.T) {
	promoRepo := new(mockPromotionRepository)
	resolver := NewScheduleResolver(testLogger(), promoRepo)

	promoID := uuid.New()
	entity := activeSession(time.Now(), 2)
	entity.PromoID = &promoID

	// expired window: prices still apply because attachment already happened
	windowEnd := time.Now().Add(-time.Hour)
	promo := &promotion.Promotion{
		ID:             promoID,
		Name:           "happy hour",
		FirstHourPrice: 18,
		ExtraHourPrice: 12,
		IsActive:       true,
		EndDate:        &windowEnd,
	}
	promoRepo.On("Get", context.Background(), promoID).Return(promo, nil)

	sched := resolver.Resolve(context.Background(), entity)

	assert.Equal(t, 18.0, sched.FirstHourPrice)
	assert.Equal(t, 12.0, sched.ExtraHourPrice)
}

func TestScheduleResolver_LoadFailureFallsBack(t *testing.T) {
	promoRepo := new(mockPromotionRepository)
	resolver := NewScheduleResolver(testLogger(), promoRepo)

	promoID := uuid.New()
	entity := activeSession(time.Now(), 2)
	entity.PromoID = &promoID

	promoRepo.On("Get", context.Background(), promoID).Return(nil, errors.New("db down"))

	sched := resolver.Resolve(context.Background(), entity)

	assert.Equal(t, billing.DefaultSchedule(), sched)
}
