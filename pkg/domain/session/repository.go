package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	List(ctx context.Context, status string, offset, limit int) ([]Session, error)
	ListActive(ctx context.Context) ([]Session, error)
	ActiveForTable(ctx context.Context, tableID uuid.UUID) (*Session, error)
	CompletedBetween(ctx context.Context, from, to time.Time) ([]Session, error)
	Update(ctx context.Context, session *Session) error
}
