package sales

import (
	"time"

	"github.com/vansh1703/cars/internal/domain"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// YearAggregate is one year of sales bucketed by calendar month. Monthly
// always holds twelve entries and the year totals are the sums of the
// buckets, so they cannot drift from the chart data.
type YearAggregate struct {
	Monthly []domain.MonthBucket
	Revenue int64
	Profit  int64
}

// Aggregate buckets sale records into the twelve months of year, summing
// revenue and profit per bucket. Month attribution uses loc, not the
// record's own offset, so a sale near midnight lands in the same month no
// matter where it was entered from.
//
// Records without a sold date are skipped entirely. Records whose purchase
// price is unknown or non-positive still count toward revenue and the sold
// count but contribute nothing to profit; treating an unknown cost as zero
// would inflate profit instead of flagging the gap.
func Aggregate(records []domain.SaleRecord, year int, loc *time.Location) YearAggregate {
	monthly := make([]domain.MonthBucket, len(monthNames))
	for i := range monthly {
		monthly[i].Month = monthNames[i]
	}

	for _, r := range records {
		if r.SoldAt == nil {
			continue
		}
		soldAt := r.SoldAt.In(loc)
		if soldAt.Year() != year {
			continue
		}
		bucket := &monthly[int(soldAt.Month())-1]
		bucket.Revenue += r.SellPrice
		bucket.Count++
		if r.PurchasePrice != nil && *r.PurchasePrice > 0 {
			bucket.Profit += r.SellPrice - *r.PurchasePrice
		}
	}

	agg := YearAggregate{Monthly: monthly}
	for _, m := range monthly {
		agg.Revenue += m.Revenue
		agg.Profit += m.Profit
	}
	return agg
}

// Count returns the number of sales across all buckets.
func (a YearAggregate) Count() int {
	total := 0
	for _, m := range a.Monthly {
		total += m.Count
	}
	return total
}

// Records flattens both physical sale sources into the single shape the
// aggregator consumes.
func Records(sold []domain.Car, manual []domain.ManualSale) []domain.SaleRecord {
	records := make([]domain.SaleRecord, 0, len(sold)+len(manual))
	for i := range sold {
		records = append(records, sold[i].SaleRecord())
	}
	for i := range manual {
		records = append(records, manual[i].SaleRecord())
	}
	return records
}

// YearBounds returns the half-open interval [start of year, start of next
// year) in loc, for pushing the year filter down into the store instead of
// fetching every historical sale.
func YearBounds(year int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(1, 0, 0)
}
