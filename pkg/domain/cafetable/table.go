package cafetable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusFree     = "free"
	StatusOccupied = "occupied"
)

// Table is a physical table on the floor. Status flips to occupied when a
// session starts on it and back to free when the session ends or is
// cancelled.
type Table struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Label     string    `json:"label" gorm:"not null;uniqueIndex"`
	Seats     int       `json:"seats" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:free"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = StatusFree
	}
	return t.Validate()
}

func (t *Table) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

func (t *Table) Validate() error {
	if t.Label == "" {
		return fmt.Errorf("label is required")
	}
	if t.Seats < 1 {
		return fmt.Errorf("seats must be at least 1")
	}
	if t.Status != StatusFree && t.Status != StatusOccupied {
		return fmt.Errorf("invalid table status: %s", t.Status)
	}
	return nil
}

func (t *Table) TableName() string {
	return "cafe_tables"
}
