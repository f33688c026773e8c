package request

type StartSessionRequest struct {
	TableID    string `json:"table_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Capacity   int    `json:"capacity"`
	PromoID    string `json:"promo_id,omitempty"`
}

// EndSessionRequest settles a session. TotalAmount may override the engine's
// computed figure (e.g. a manual discount); overrides require a note. When
// no split is given the whole amount is recorded as cash.
type EndSessionRequest struct {
	CashAmount   float64  `json:"cash_amount"`
	CardAmount   float64  `json:"card_amount"`
	OnlineAmount float64  `json:"online_amount"`
	TotalAmount  *float64 `json:"total_amount,omitempty"`
	OverrideNote string   `json:"override_note,omitempty"`
}

type CancelSessionRequest struct {
	Reason string `json:"reason,omitempty"`
}
