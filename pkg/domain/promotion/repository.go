package promotion

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, promo *Promotion) error
	Get(ctx context.Context, id uuid.UUID) (*Promotion, error)
	List(ctx context.Context, offset, limit int) ([]Promotion, error)
	Update(ctx context.Context, promo *Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}
