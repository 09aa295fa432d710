package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh1703/cars/internal/domain"
)

func TestMemoryCacheExpiresAfterTTL(t *testing.T) {
	clock := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	c := NewMemoryDashboardCache(5 * time.Minute).(*memoryDashboardCache)
	c.now = func() time.Time { return clock }

	payload := &domain.DashboardPayload{YearRevenue: 123}
	require.NoError(t, c.Set(context.Background(), payload))

	clock = clock.Add(4 * time.Minute)
	got, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(123), got.YearRevenue)

	clock = clock.Add(2 * time.Minute)
	_, ok, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "entry past its TTL must read as a miss")
}

func TestMemoryCacheMissBeforeFirstSet(t *testing.T) {
	c := NewMemoryDashboardCache(time.Minute)

	_, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := NewMemoryDashboardCache(time.Hour)

	require.NoError(t, c.Set(context.Background(), &domain.DashboardPayload{YearRevenue: 1}))
	require.NoError(t, c.Invalidate(context.Background()))

	_, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheReturnsCopies(t *testing.T) {
	c := NewMemoryDashboardCache(time.Hour)

	stored := &domain.DashboardPayload{
		YearRevenue: 10,
		MonthlyData: []domain.MonthBucket{{Month: "Jan", Revenue: 100}},
		YearlySummaries: []domain.YearlySummary{
			{Year: 2024, TotalRevenue: 500},
		},
	}
	require.NoError(t, c.Set(context.Background(), stored))

	// Mutating what the caller handed in must not reach the cached entry.
	stored.MonthlyData[0].Revenue = 777

	first, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	first.YearRevenue = 999
	first.MonthlyData[0].Revenue = 999
	first.YearlySummaries[0].TotalRevenue = 999

	second, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(10), second.YearRevenue, "callers must not be able to mutate the cached payload")
	assert.Equal(t, int64(100), second.MonthlyData[0].Revenue, "bucket slices must not alias the cached entry")
	assert.Equal(t, int64(500), second.YearlySummaries[0].TotalRevenue, "summary slices must not alias the cached entry")
}
