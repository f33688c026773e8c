package event

// SessionChangedEvent is published whenever a session is started, settled or
// cancelled so every staff client drops its cached copy and repaints.
type SessionChangedEvent struct {
	SessionID string `json:"session_id"`
	TableID   string `json:"table_id"`
	Status    string `json:"status"`
}

func (e SessionChangedEvent) Type() string {
	return SessionChangedEventType
}
