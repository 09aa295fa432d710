package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vansh1703/cars/internal/domain"
)

// memoryDashboardCache is the single-process fallback when redis is not
// configured. Same semantics as the redis cache: entries expire after ttl
// and Invalidate drops them immediately.
type memoryDashboardCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	payload *domain.DashboardPayload
	savedAt time.Time
	now     func() time.Time
}

func NewMemoryDashboardCache(ttl time.Duration) DashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &memoryDashboardCache{ttl: ttl, now: time.Now}
}

func (c *memoryDashboardCache) Get(ctx context.Context) (*domain.DashboardPayload, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payload == nil {
		return nil, false, nil
	}
	if c.now().Sub(c.savedAt) >= c.ttl {
		c.payload = nil
		return nil, false, nil
	}

	return clonePayload(c.payload), true, nil
}

func (c *memoryDashboardCache) Set(ctx context.Context, payload *domain.DashboardPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.payload = clonePayload(payload)
	c.savedAt = c.now()
	return nil
}

// clonePayload copies the payload including its slices, so callers can never
// alias the cached entry through a returned or stored pointer.
func clonePayload(p *domain.DashboardPayload) *domain.DashboardPayload {
	copied := *p
	copied.MonthlyData = append([]domain.MonthBucket(nil), p.MonthlyData...)
	copied.YearlySummaries = append([]domain.YearlySummary(nil), p.YearlySummaries...)
	return &copied
}

func (c *memoryDashboardCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.payload = nil
	return nil
}
