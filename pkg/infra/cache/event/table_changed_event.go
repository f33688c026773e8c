package event

type TableChangedEvent struct {
	TableID string `json:"table_id"`
	Status  string `json:"status"`
}

func (e TableChangedEvent) Type() string {
	return TableChangedEventType
}
