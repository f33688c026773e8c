package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"gorm.io/gorm"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) promotion.Repository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, entity *promotion.Promotion) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepository) Get(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	var entity promotion.Promotion
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("promotion", id)
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &entity, nil
}

func (r *PromotionRepository) List(ctx context.Context, offset, limit int) ([]promotion.Promotion, error) {
	var promos []promotion.Promotion
	err := r.db.WithContext(ctx).Model(&promotion.Promotion{}).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&promos).Error
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promos, nil
}

func (r *PromotionRepository) Update(ctx context.Context, entity *promotion.Promotion) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&promotion.Promotion{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete promotion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("promotion", id)
	}
	return nil
}
