package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/config"
	"github.com/vansh1703/cars/internal/domain"
)

const (
	dashboardPayloadKey = "dashboard:payload"
	defaultDashboardTTL = 5 * time.Minute
)

// DashboardCache holds the last computed dashboard payload for its TTL so a
// refresh inside the window costs zero store reads. It is best effort: a
// miss, an expired entry, or an unreadable payload all just mean recompute.
type DashboardCache interface {
	Get(ctx context.Context) (*domain.DashboardPayload, bool, error)
	Set(ctx context.Context, payload *domain.DashboardPayload) error
	Invalidate(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

// NewDashboardCache builds a redis-backed cache when caching is enabled,
// otherwise an in-memory one scoped to this process.
func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	ttl := time.Duration(cfg.DashboardTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}

	if !cfg.Enabled {
		return NewMemoryDashboardCache(ttl), nil
	}

	client, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisDashboardCache{client: client, ttl: ttl}, nil
}

func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) Get(ctx context.Context) (*domain.DashboardPayload, bool, error) {
	raw, err := c.client.Get(ctx, dashboardPayloadKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	payload, ok := decodePayload(raw)
	return payload, ok, nil
}

// decodePayload turns a stored cache entry back into a payload. A corrupt
// entry is a miss, not a failure.
func decodePayload(raw []byte) (*domain.DashboardPayload, bool) {
	var payload domain.DashboardPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Warn().Err(err).Msg("dashboard cache: discarding unreadable payload")
		return nil, false
	}
	return &payload, true
}

func (c *redisDashboardCache) Set(ctx context.Context, payload *domain.DashboardPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode dashboard payload: %w", err)
	}

	if err := c.client.Set(ctx, dashboardPayloadKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, dashboardPayloadKey).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopDashboardCache) Get(ctx context.Context) (*domain.DashboardPayload, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) Set(ctx context.Context, payload *domain.DashboardPayload) error {
	return nil
}

func (n *noopDashboardCache) Invalidate(ctx context.Context) error {
	return nil
}
