package game

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, game *Game) error
	Get(ctx context.Context, id uuid.UUID) (*Game, error)
	List(ctx context.Context, search string, offset, limit int) ([]Game, error)
	Update(ctx context.Context, game *Game) error
	Delete(ctx context.Context, id uuid.UUID) error
}
