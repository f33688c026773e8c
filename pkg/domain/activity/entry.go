package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionSessionStarted   = "session.started"
	ActionSessionSettled   = "session.settled"
	ActionSessionCancelled = "session.cancelled"
	ActionPromotionCreated = "promotion.created"
	ActionPromotionUpdated = "promotion.updated"
)

// Entry is an append-only audit record of a staff action.
type Entry struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action" gorm:"not null;index"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id" gorm:"type:uuid"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *Entry) TableName() string {
	return "activity_log"
}
