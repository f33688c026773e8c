package cache

import (
	"context"

	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
)

type EventPublisher interface {
	Publish(ctx context.Context, channel channel.Channel, ev event.Event) error
}
