package activity

import "context"

type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context, offset, limit int) ([]Entry, error)
}
