package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"gorm.io/gorm"
)

type CafeTableRepository struct {
	db *gorm.DB
}

func NewCafeTableRepository(db *gorm.DB) cafetable.Repository {
	return &CafeTableRepository{db: db}
}

func (r *CafeTableRepository) Create(ctx context.Context, entity *cafetable.Table) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

func (r *CafeTableRepository) Get(ctx context.Context, id uuid.UUID) (*cafetable.Table, error) {
	var entity cafetable.Table
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("table", id)
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &entity, nil
}

func (r *CafeTableRepository) List(ctx context.Context, offset, limit int) ([]cafetable.Table, error) {
	var tables []cafetable.Table
	err := r.db.WithContext(ctx).Model(&cafetable.Table{}).
		Order("label asc").
		Offset(offset).
		Limit(limit).
		Find(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (r *CafeTableRepository) Update(ctx context.Context, entity *cafetable.Table) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

func (r *CafeTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&cafetable.Table{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete table: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("table", id)
	}
	return nil
}

func (r *CafeTableRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&cafetable.Table{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("set table status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("table", id)
	}
	return nil
}
