package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/cache"
	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/repository"
	"github.com/vansh1703/cars/internal/sales"
)

// DashboardService assembles the admin dashboard: inventory counts, the
// current year's monthly revenue/profit buckets, and the archived yearly
// summaries. Results are cached for the configured TTL; a manual sale
// invalidates the cache so it shows up immediately.
type DashboardService struct {
	cars      repository.CarRepository
	manual    repository.ManualSaleRepository
	summaries repository.SummaryRepository
	archiver  *sales.Archiver
	cache     cache.DashboardCache
	loc       *time.Location
	now       func() time.Time
}

func NewDashboardService(
	cars repository.CarRepository,
	manual repository.ManualSaleRepository,
	summaries repository.SummaryRepository,
	cacheImpl cache.DashboardCache,
	loc *time.Location,
) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		cars:      cars,
		manual:    manual,
		summaries: summaries,
		archiver:  sales.NewArchiver(cars, manual, summaries, loc),
		cache:     cacheImpl,
		loc:       loc,
		now:       time.Now,
	}
}

// GetDashboard returns the dashboard payload, from cache when fresh. A
// forced refresh skips the cache read but still repopulates it. If
// recomputing fails and a cached payload survives, the stale payload is
// served rather than an empty error page.
func (s *DashboardService) GetDashboard(ctx context.Context, forceRefresh bool) (*domain.DashboardPayload, error) {
	if !forceRefresh {
		if payload, ok, err := s.cache.Get(ctx); err == nil && ok {
			return payload, nil
		} else if err != nil {
			log.Warn().Err(err).Msg("dashboard: cache get failed")
		}
	}

	payload, err := s.compute(ctx)
	if err != nil {
		if cached, ok, cacheErr := s.cache.Get(ctx); cacheErr == nil && ok {
			log.Warn().Err(err).Msg("dashboard: refresh failed, serving cached payload")
			return cached, nil
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, payload); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set failed")
	}

	return payload, nil
}

func (s *DashboardService) compute(ctx context.Context) (*domain.DashboardPayload, error) {
	currentYear := s.now().In(s.loc).Year()

	// Archival runs first so the summaries list below already includes a
	// freshly rolled-over year. Archival failure only costs us that row
	// until the next load; the rest of the dashboard still renders.
	if err := s.archiver.Run(ctx, currentYear); err != nil {
		log.Warn().Err(err).Msg("dashboard: year archival skipped")
	}

	total, sold, err := s.cars.Counts(ctx)
	if err != nil {
		return nil, err
	}

	from, to := sales.YearBounds(currentYear, s.loc)
	soldCars, err := s.cars.ListSoldBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	manualSales, err := s.manual.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	agg := sales.Aggregate(sales.Records(soldCars, manualSales), currentYear, s.loc)

	summaries, err := s.summaries.List(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardPayload{
		Stats: domain.InventoryStats{
			TotalCars:     total,
			SoldCars:      sold,
			AvailableCars: total - sold,
		},
		MonthlyData:     agg.Monthly,
		YearRevenue:     agg.Revenue,
		YearProfit:      agg.Profit,
		YearlySummaries: summaries,
	}, nil
}

// RecordManualSale logs an off-platform sale and invalidates the cached
// dashboard so the new figures are reflected immediately instead of after
// the TTL.
func (s *DashboardService) RecordManualSale(ctx context.Context, sale *domain.ManualSale) error {
	if sale.SoldAt == nil {
		now := s.now().In(s.loc)
		sale.SoldAt = &now
	}
	if err := s.manual.Create(ctx, sale); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListManualSales returns the manual sales register, newest first.
func (s *DashboardService) ListManualSales(ctx context.Context) ([]domain.ManualSale, error) {
	return s.manual.List(ctx)
}

// Invalidate drops the cached payload. Car-side sale events call this too,
// since a listed sale moves the same aggregates as a manual one.
func (s *DashboardService) Invalidate(ctx context.Context) {
	s.invalidate(ctx)
}

func (s *DashboardService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache invalidate failed")
	}
}
