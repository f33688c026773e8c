package cafetable

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, table *Table) error
	Get(ctx context.Context, id uuid.UUID) (*Table, error)
	List(ctx context.Context, offset, limit int) ([]Table, error)
	Update(ctx context.Context, table *Table) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
