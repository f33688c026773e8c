package billing

// DefaultFirstHourPrice and DefaultExtraHourPrice are the house rates,
// per person, applied when a session has no promotion attached.
const (
	DefaultFirstHourPrice = 30.0
	DefaultExtraHourPrice = 30.0
)

// PriceSchedule holds the per-person rates used by the engine. A promotion
// substitutes its own schedule; otherwise DefaultSchedule applies.
type PriceSchedule struct {
	FirstHourPrice float64 `json:"first_hour_price"`
	ExtraHourPrice float64 `json:"extra_hour_price"`
}

func DefaultSchedule() PriceSchedule {
	return PriceSchedule{
		FirstHourPrice: DefaultFirstHourPrice,
		ExtraHourPrice: DefaultExtraHourPrice,
	}
}

func (s PriceSchedule) clamped() PriceSchedule {
	if s.FirstHourPrice < 0 {
		s.FirstHourPrice = 0
	}
	if s.ExtraHourPrice < 0 {
		s.ExtraHourPrice = 0
	}
	return s
}
