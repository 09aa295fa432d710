package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh1703/cars/internal/cache"
	"github.com/vansh1703/cars/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

type countingCarRepo struct {
	sold      []domain.Car
	total     int
	soldCount int
	countsErr error
	calls     int
}

func (f *countingCarRepo) List(ctx context.Context, onlyAvailable bool) ([]domain.Car, error) {
	f.calls++
	return nil, nil
}
func (f *countingCarRepo) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	f.calls++
	return nil, nil
}
func (f *countingCarRepo) Create(ctx context.Context, car *domain.Car) error { f.calls++; return nil }
func (f *countingCarRepo) Update(ctx context.Context, car *domain.Car) error { f.calls++; return nil }
func (f *countingCarRepo) MarkSold(ctx context.Context, id string, sale *domain.CarSaleDetails) error {
	f.calls++
	return nil
}
func (f *countingCarRepo) SoftDelete(ctx context.Context, id string) error { f.calls++; return nil }
func (f *countingCarRepo) Counts(ctx context.Context) (int, int, error) {
	f.calls++
	if f.countsErr != nil {
		return 0, 0, f.countsErr
	}
	return f.total, f.soldCount, nil
}
func (f *countingCarRepo) ListSold(ctx context.Context) ([]domain.Car, error) {
	f.calls++
	return f.sold, nil
}
func (f *countingCarRepo) ListSoldBetween(ctx context.Context, from, to time.Time) ([]domain.Car, error) {
	f.calls++
	var out []domain.Car
	for _, c := range f.sold {
		if c.SoldAt != nil && !c.SoldAt.Before(from) && c.SoldAt.Before(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

type countingManualRepo struct {
	sales []domain.ManualSale
	calls int
}

func (f *countingManualRepo) Create(ctx context.Context, sale *domain.ManualSale) error {
	f.calls++
	f.sales = append(f.sales, *sale)
	return nil
}
func (f *countingManualRepo) CreateBatch(ctx context.Context, sales []*domain.ManualSale) error {
	f.calls++
	for _, sale := range sales {
		f.sales = append(f.sales, *sale)
	}
	return nil
}
func (f *countingManualRepo) List(ctx context.Context) ([]domain.ManualSale, error) {
	f.calls++
	return f.sales, nil
}
func (f *countingManualRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.ManualSale, error) {
	f.calls++
	var out []domain.ManualSale
	for _, s := range f.sales {
		if s.SoldAt != nil && !s.SoldAt.Before(from) && s.SoldAt.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type countingSummaryRepo struct {
	rows  map[int]domain.YearlySummary
	calls int
}

func newCountingSummaryRepo() *countingSummaryRepo {
	return &countingSummaryRepo{rows: make(map[int]domain.YearlySummary)}
}

func (f *countingSummaryRepo) FindByYear(ctx context.Context, year int) (*domain.YearlySummary, error) {
	f.calls++
	if row, ok := f.rows[year]; ok {
		return &row, nil
	}
	return nil, nil
}
func (f *countingSummaryRepo) Upsert(ctx context.Context, summary *domain.YearlySummary) error {
	f.calls++
	f.rows[summary.Year] = *summary
	return nil
}
func (f *countingSummaryRepo) List(ctx context.Context) ([]domain.YearlySummary, error) {
	f.calls++
	out := make([]domain.YearlySummary, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func newTestDashboardService() (*DashboardService, *countingCarRepo, *countingManualRepo, *countingSummaryRepo) {
	cars := &countingCarRepo{total: 10, soldCount: 3}
	manual := &countingManualRepo{}
	summaries := newCountingSummaryRepo()
	// 2024 already archived so the archiver stays quiet in these tests.
	summaries.rows[2024] = domain.YearlySummary{Year: 2024, TotalRevenue: 1, TotalCarsSold: 1}

	svc := NewDashboardService(cars, manual, summaries, cache.NewMemoryDashboardCache(5*time.Minute), time.UTC)
	svc.now = func() time.Time { return time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC) }
	return svc, cars, manual, summaries
}

func TestGetDashboardServesFromCacheWithoutStoreReads(t *testing.T) {
	svc, cars, manual, summaries := newTestDashboardService()

	first, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 10, first.Stats.TotalCars)
	assert.Equal(t, 3, first.Stats.SoldCars)
	assert.Equal(t, 7, first.Stats.AvailableCars)

	carCalls, manualCalls, summaryCalls := cars.calls, manual.calls, summaries.calls

	second, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, first.Stats, second.Stats)

	assert.Equal(t, carCalls, cars.calls, "a fresh cache hit must not touch the car store")
	assert.Equal(t, manualCalls, manual.calls, "a fresh cache hit must not touch the manual sales store")
	assert.Equal(t, summaryCalls, summaries.calls, "a fresh cache hit must not touch the summary store")
}

func TestGetDashboardForceRefreshRecomputes(t *testing.T) {
	svc, cars, _, _ := newTestDashboardService()

	_, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	callsAfterFirst := cars.calls

	_, err = svc.GetDashboard(context.Background(), true)
	require.NoError(t, err)
	assert.Greater(t, cars.calls, callsAfterFirst, "forced refresh must bypass the cache")
}

func TestRecordManualSaleInvalidatesCache(t *testing.T) {
	svc, cars, manual, _ := newTestDashboardService()

	_, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	callsAfterFirst := cars.calls

	err = svc.RecordManualSale(context.Background(), &domain.ManualSale{
		CarTitle:      "Swift VXI",
		SellPrice:     450000,
		PurchasePrice: int64Ptr(400000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, len(manual.sales))
	require.NotNil(t, manual.sales[0].SoldAt, "sale date defaults to now when omitted")

	payload, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	assert.Greater(t, cars.calls, callsAfterFirst, "recording a sale must drop the cached payload")
	assert.Equal(t, int64(450000), payload.YearRevenue)
	assert.Equal(t, int64(50000), payload.YearProfit)
	assert.Equal(t, "Apr", payload.MonthlyData[3].Month)
	assert.Equal(t, 1, payload.MonthlyData[3].Count)
}

func TestGetDashboardServesStalePayloadWhenRefreshFails(t *testing.T) {
	svc, cars, _, _ := newTestDashboardService()

	first, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)

	cars.countsErr = errors.New("connection refused")

	payload, err := svc.GetDashboard(context.Background(), true)
	require.NoError(t, err, "a surviving cached payload beats an error page")
	assert.Equal(t, first.Stats, payload.Stats)
}

func TestGetDashboardFailsWhenNoCachedPayloadSurvives(t *testing.T) {
	svc, cars, _, _ := newTestDashboardService()
	cars.countsErr = errors.New("connection refused")

	_, err := svc.GetDashboard(context.Background(), false)
	require.Error(t, err)
}

func TestGetDashboardIncludesCurrentYearSalesOnly(t *testing.T) {
	svc, cars, manual, _ := newTestDashboardService()

	cars.sold = []domain.Car{
		{
			Price:          500000,
			PurchasePrice:  int64Ptr(400000),
			SoldAt:         timePtr(time.Date(2025, time.February, 14, 12, 0, 0, 0, time.UTC)),
			FinalSellPrice: int64Ptr(520000),
		},
		{
			Price:  300000,
			SoldAt: timePtr(time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)),
		},
	}
	manual.sales = []domain.ManualSale{
		{
			SellPrice: 200000,
			SoldAt:    timePtr(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)),
		},
	}

	payload, err := svc.GetDashboard(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, int64(720000), payload.YearRevenue)
	assert.Equal(t, int64(120000), payload.YearProfit)
	assert.Equal(t, 1, payload.MonthlyData[1].Count)
	assert.Equal(t, 1, payload.MonthlyData[2].Count)
	require.Len(t, payload.YearlySummaries, 1)
	assert.Equal(t, 2024, payload.YearlySummaries[0].Year)
}
