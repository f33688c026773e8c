package repository

import (
	"context"
	"fmt"

	"github.com/playdeck/tabletally/pkg/domain/activity"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *activity.Entry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append activity entry: %w", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, offset, limit int) ([]activity.Entry, error) {
	var entries []activity.Entry
	err := r.db.WithContext(ctx).Model(&activity.Entry{}).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list activity entries: %w", err)
	}
	return entries, nil
}
