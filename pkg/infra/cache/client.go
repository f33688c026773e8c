package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/playdeck/tabletally/pkg/domain/promotion"
	"github.com/playdeck/tabletally/pkg/domain/session"
)

const (
	SessionKeyPattern   = "session:%s"
	PromotionKeyPattern = "promotion:%s"
	TableKeyPattern     = "table:%s"

	defaultTTL = 5 * time.Minute
)

// Client is the redis-backed read cache shared by handlers. A small local
// sync.Map fronts redis for hot keys; pub/sub invalidation keeps the local
// copies of every staff client in line.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	RedisClient() *redis.Client

	GetSession(ctx context.Context, id string) (*session.Session, error)
	SaveSession(ctx context.Context, entity *session.Session) error
	InvalidateSession(ctx context.Context, id string) error
	GetPromotion(ctx context.Context, id string) (*promotion.Promotion, error)
	SavePromotion(ctx context.Context, entity *promotion.Promotion) error
	InvalidatePromotion(ctx context.Context, id string) error
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}

type client struct {
	redisClient *redis.Client
	localCache  sync.Map
	ttl         time.Duration
}

func NewClient(cfg Config) (Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return &client{
		redisClient: redis.NewClient(options),
		ttl:         defaultTTL,
	}, nil
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.localCache.Load(key); ok {
		if str, ok := value.(string); ok {
			return str, nil
		}
	}
	return c.redisClient.Get(ctx, key).Result()
}

func (c *client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.redisClient.Set(ctx, key, value, expiration).Err(); err != nil {
		return err
	}
	c.localCache.Store(key, value)
	return nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		return err
	}
	c.localCache.Delete(key)
	return nil
}

func (c *client) RedisClient() *redis.Client {
	return c.redisClient
}

func (c *client) GetSession(ctx context.Context, id string) (*session.Session, error) {
	raw, err := c.Get(ctx, fmt.Sprintf(SessionKeyPattern, id))
	if err != nil {
		return nil, err
	}
	var entity session.Session
	if err := json.Unmarshal([]byte(raw), &entity); err != nil {
		return nil, fmt.Errorf("unmarshal cached session: %w", err)
	}
	return &entity, nil
}

func (c *client) SaveSession(ctx context.Context, entity *session.Session) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return c.Set(ctx, fmt.Sprintf(SessionKeyPattern, entity.ID), string(data), c.ttl)
}

func (c *client) InvalidateSession(ctx context.Context, id string) error {
	return c.Delete(ctx, fmt.Sprintf(SessionKeyPattern, id))
}

func (c *client) GetPromotion(ctx context.Context, id string) (*promotion.Promotion, error) {
	raw, err := c.Get(ctx, fmt.Sprintf(PromotionKeyPattern, id))
	if err != nil {
		return nil, err
	}
	var entity promotion.Promotion
	if err := json.Unmarshal([]byte(raw), &entity); err != nil {
		return nil, fmt.Errorf("unmarshal cached promotion: %w", err)
	}
	return &entity, nil
}

func (c *client) SavePromotion(ctx context.Context, entity *promotion.Promotion) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal promotion: %w", err)
	}
	return c.Set(ctx, fmt.Sprintf(PromotionKeyPattern, entity.ID), string(data), c.ttl)
}

func (c *client) InvalidatePromotion(ctx context.Context, id string) error {
	return c.Delete(ctx, fmt.Sprintf(PromotionKeyPattern, id))
}
