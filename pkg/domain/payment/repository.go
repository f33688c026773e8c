package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MethodTotals is the per-method revenue breakdown over a period.
type MethodTotals struct {
	Cash   float64 `json:"cash"`
	Card   float64 `json:"card"`
	Online float64 `json:"online"`
}

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*Payment, error)
	List(ctx context.Context, offset, limit int) ([]Payment, error)
	TotalsByMethod(ctx context.Context, from, to time.Time) (MethodTotals, error)
}
