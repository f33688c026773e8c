package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/game"
	"gorm.io/gorm"
)

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) game.Repository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, entity *game.Game) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

func (r *GameRepository) Get(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	var entity game.Game
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("game", id)
		}
		return nil, fmt.Errorf("get game: %w", err)
	}
	return &entity, nil
}

func (r *GameRepository) List(ctx context.Context, search string, offset, limit int) ([]game.Game, error) {
	q := r.db.WithContext(ctx).Model(&game.Game{}).Order("title asc")
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	var games []game.Game
	if err := q.Offset(offset).Limit(limit).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (r *GameRepository) Update(ctx context.Context, entity *game.Game) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&game.Game{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("game", id)
	}
	return nil
}
