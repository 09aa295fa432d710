package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/repository"
)

// Archiver snapshots a completed year's totals into the yearly summary
// table exactly once. The gate is the summary row itself: once a year has a
// row it is terminal and Run never recomputes it. Because the write is an
// upsert keyed by year, two dashboards racing through the gate converge on
// the same row instead of erroring; for a closed year both compute the same
// totals anyway.
type Archiver struct {
	cars      repository.CarRepository
	manual    repository.ManualSaleRepository
	summaries repository.SummaryRepository
	loc       *time.Location
}

func NewArchiver(
	cars repository.CarRepository,
	manual repository.ManualSaleRepository,
	summaries repository.SummaryRepository,
	loc *time.Location,
) *Archiver {
	if loc == nil {
		loc = time.UTC
	}
	return &Archiver{cars: cars, manual: manual, summaries: summaries, loc: loc}
}

// Run archives currentYear-1 if it has activity and no summary row yet.
// A year with no sales writes nothing, so late-arriving data keeps the year
// eligible on a later trigger. Any store error aborts this invocation; the
// next dashboard load retries.
func (a *Archiver) Run(ctx context.Context, currentYear int) error {
	lastYear := currentYear - 1

	existing, err := a.summaries.FindByYear(ctx, lastYear)
	if err != nil {
		return fmt.Errorf("archival: summary lookup for %d: %w", lastYear, err)
	}
	if existing != nil {
		return nil
	}

	from, to := YearBounds(lastYear, a.loc)
	sold, err := a.cars.ListSoldBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("archival: fetch sold listings for %d: %w", lastYear, err)
	}
	manual, err := a.manual.ListBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("archival: fetch manual sales for %d: %w", lastYear, err)
	}
	if len(sold) == 0 && len(manual) == 0 {
		return nil
	}

	agg := Aggregate(Records(sold, manual), lastYear, a.loc)
	if agg.Count() == 0 {
		return nil
	}

	summary := &domain.YearlySummary{
		Year:          lastYear,
		TotalRevenue:  agg.Revenue,
		TotalProfit:   agg.Profit,
		TotalCarsSold: agg.Count(),
	}
	if err := a.summaries.Upsert(ctx, summary); err != nil {
		return fmt.Errorf("archival: write summary for %d: %w", lastYear, err)
	}

	log.Info().
		Int("year", lastYear).
		Int64("revenue", summary.TotalRevenue).
		Int("cars_sold", summary.TotalCarsSold).
		Msg("archived completed year")
	return nil
}
