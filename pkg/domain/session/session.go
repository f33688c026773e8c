package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Session is a timed occupancy of a table by a customer group. StartedAt is
// set once at creation; EndedAt, TotalCost and Hours are frozen exactly once
// when the session leaves the active state.
type Session struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TableID    uuid.UUID  `json:"table_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID  `json:"customer_id" gorm:"type:uuid;index"`
	Capacity   int        `json:"capacity" gorm:"not null"`
	PromoID    *uuid.UUID `json:"promo_id,omitempty" gorm:"type:uuid"`
	Status     string     `json:"status" gorm:"not null;index"`
	StartedAt  time.Time  `json:"started_at" gorm:"not null"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	TotalCost  float64    `json:"total_cost"`
	Hours      float64    `json:"hours"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return s.Validate()
}

func (s *Session) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

func (s *Session) Validate() error {
	if s.TableID == uuid.Nil {
		return fmt.Errorf("table_id is required")
	}
	if s.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}
	switch s.Status {
	case StatusActive, StatusCompleted, StatusCancelled:
	default:
		return fmt.Errorf("invalid session status: %s", s.Status)
	}
	if s.Status == StatusActive && s.EndedAt != nil {
		return fmt.Errorf("active session cannot have an end time")
	}
	if s.Status != StatusActive && s.EndedAt == nil {
		return fmt.Errorf("%s session requires an end time", s.Status)
	}
	return nil
}

func (s *Session) IsActive() bool {
	return s.Status == StatusActive
}

// CanTransitionTo enforces the two legal moves out of active. Completed and
// cancelled are terminal.
func (s *Session) CanTransitionTo(status string) bool {
	if s.Status != StatusActive {
		return false
	}
	return status == StatusCompleted || status == StatusCancelled
}

func (s *Session) TableName() string {
	return "sessions"
}
