package promotion

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	"gorm.io/gorm"
)

// Promotion is an alternate per-person price schedule. The optional
// StartDate/EndDate window gates attachment: a session picks up the promo's
// prices only if the promo is active at start time, and keeps them for its
// whole lifetime after that.
type Promotion struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string     `json:"name" gorm:"not null"`
	Description    string     `json:"description"`
	FirstHourPrice float64    `json:"first_hour_price" gorm:"not null"`
	ExtraHourPrice float64    `json:"extra_hour_price" gorm:"not null"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return p.Validate()
}

func (p *Promotion) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

func (p *Promotion) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.FirstHourPrice < 0 || p.ExtraHourPrice < 0 {
		return fmt.Errorf("prices must be non-negative")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	return nil
}

// ActiveAt reports whether the promotion may be attached to a session
// starting at t: the IsActive flag must be set and t must fall inside the
// validity window when one is configured.
func (p *Promotion) ActiveAt(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && t.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && t.After(*p.EndDate) {
		return false
	}
	return true
}

func (p *Promotion) Schedule() billing.PriceSchedule {
	return billing.PriceSchedule{
		FirstHourPrice: p.FirstHourPrice,
		ExtraHourPrice: p.ExtraHourPrice,
	}
}

func (p *Promotion) TableName() string {
	return "promotions"
}
