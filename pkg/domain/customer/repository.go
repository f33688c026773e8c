package customer

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	Get(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
