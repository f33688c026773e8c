package request

import "time"

type PromotionRequest struct {
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	FirstHourPrice float64    `json:"first_hour_price"`
	ExtraHourPrice float64    `json:"extra_hour_price"`
	IsActive       *bool      `json:"is_active,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}
