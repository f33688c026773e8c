package payment

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SplitTolerance is how far the cash/card/online sub-amounts may drift from
// the total before the payment is rejected.
const SplitTolerance = 0.01

// Payment records the settlement of a completed session. TotalAmount is what
// the staff actually charged; ComputedAmount is what the billing engine
// reported at end time. When the two differ the override note says why.
type Payment struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID      uuid.UUID `json:"session_id" gorm:"type:uuid;not null;uniqueIndex"`
	CashAmount     float64   `json:"cash_amount"`
	CardAmount     float64   `json:"card_amount"`
	OnlineAmount   float64   `json:"online_amount"`
	TotalAmount    float64   `json:"total_amount" gorm:"not null"`
	ComputedAmount float64   `json:"computed_amount" gorm:"not null"`
	OverrideNote   string    `json:"override_note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return p.Validate()
}

func (p *Payment) Validate() error {
	if p.SessionID == uuid.Nil {
		return fmt.Errorf("session_id is required")
	}
	if p.CashAmount < 0 || p.CardAmount < 0 || p.OnlineAmount < 0 {
		return fmt.Errorf("payment amounts must be non-negative")
	}
	if !p.SplitMatchesTotal() {
		return fmt.Errorf("cash %.2f + card %.2f + online %.2f does not equal total %.2f",
			p.CashAmount, p.CardAmount, p.OnlineAmount, p.TotalAmount)
	}
	return nil
}

func (p *Payment) SplitMatchesTotal() bool {
	return math.Abs(p.CashAmount+p.CardAmount+p.OnlineAmount-p.TotalAmount) <= SplitTolerance
}

// IsOverride reports whether staff settled a different amount than the
// engine computed. Overrides are allowed but must carry a note.
func (p *Payment) IsOverride() bool {
	return math.Abs(p.TotalAmount-p.ComputedAmount) > SplitTolerance
}

func (p *Payment) TableName() string {
	return "payments"
}
