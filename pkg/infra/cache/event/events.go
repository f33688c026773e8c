package event

import "reflect"

type Event interface {
	Type() string
}

var (
	SessionChangedEventType   = "SessionChangedEvent"
	PromotionChangedEventType = "PromotionChangedEvent"
	TableChangedEventType     = "TableChangedEvent"
)

var Registry = map[string]reflect.Type{
	SessionChangedEventType:   reflect.TypeOf(SessionChangedEvent{}),
	PromotionChangedEventType: reflect.TypeOf(PromotionChangedEvent{}),
	TableChangedEventType:     reflect.TypeOf(TableChangedEvent{}),
}
