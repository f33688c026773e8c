package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) payment.Repository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, entity *payment.Payment) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	var entity payment.Payment
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("payment", id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &entity, nil
}

func (r *PaymentRepository) GetBySession(ctx context.Context, sessionID uuid.UUID) (*payment.Payment, error) {
	var entity payment.Payment
	if err := r.db.WithContext(ctx).Take(&entity, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("payment", sessionID)
		}
		return nil, fmt.Errorf("get payment by session: %w", err)
	}
	return &entity, nil
}

func (r *PaymentRepository) List(ctx context.Context, offset, limit int) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := r.db.WithContext(ctx).Model(&payment.Payment{}).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// TotalsByMethod aggregates settled revenue per payment method. Payments
// only exist for completed sessions, so cancelled sessions never show up
// here.
func (r *PaymentRepository) TotalsByMethod(ctx context.Context, from, to time.Time) (payment.MethodTotals, error) {
	var totals payment.MethodTotals
	err := r.db.WithContext(ctx).Model(&payment.Payment{}).
		Select("COALESCE(SUM(cash_amount),0) as cash, COALESCE(SUM(card_amount),0) as card, COALESCE(SUM(online_amount),0) as online").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&totals).Error
	if err != nil {
		return payment.MethodTotals{}, fmt.Errorf("totals by method: %w", err)
	}
	return totals, nil
}
