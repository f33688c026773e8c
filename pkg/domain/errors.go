package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrSessionNotActive   = errors.New("session is not active")
	ErrTableOccupied      = errors.New("table already has an active session")
	ErrPromotionInactive  = errors.New("promotion is not active")
	ErrPaymentSplitBroken = errors.New("payment split does not add up to the total amount")
)

type notFoundError struct {
	EntityType string
	ID         uuid.UUID
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var nf *notFoundError
	return errors.As(err, &nf)
}
