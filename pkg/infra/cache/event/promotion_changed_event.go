package event

type PromotionChangedEvent struct {
	PromotionID string `json:"promotion_id"`
	Deleted     bool   `json:"deleted,omitempty"`
}

func (e PromotionChangedEvent) Type() string {
	return PromotionChangedEventType
}
