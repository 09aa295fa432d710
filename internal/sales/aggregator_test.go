package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh1703/cars/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestAggregateEmptyYearStillHasTwelveBuckets(t *testing.T) {
	agg := Aggregate(nil, 2024, time.UTC)

	require.Len(t, agg.Monthly, 12)
	assert.Equal(t, "Jan", agg.Monthly[0].Month)
	assert.Equal(t, "Dec", agg.Monthly[11].Month)
	for _, m := range agg.Monthly {
		assert.Zero(t, m.Revenue)
		assert.Zero(t, m.Profit)
		assert.Zero(t, m.Count)
	}
	assert.Zero(t, agg.Revenue)
	assert.Zero(t, agg.Profit)
	assert.Zero(t, agg.Count())
}

func TestAggregateMixedSourcesInOneMonth(t *testing.T) {
	march := time.Date(2024, time.March, 12, 11, 0, 0, 0, time.UTC)

	cars := []domain.Car{
		{
			Price:          480000,
			FinalSellPrice: int64Ptr(500000),
			PurchasePrice:  int64Ptr(400000),
			SoldAt:         timePtr(march),
		},
		{
			// Never formally closed: list price stands in, cost unknown.
			Price:  300000,
			SoldAt: timePtr(march.Add(48 * time.Hour)),
		},
	}
	manual := []domain.ManualSale{
		{
			SellPrice:     200000,
			PurchasePrice: int64Ptr(150000),
			SoldAt:        timePtr(march.Add(24 * time.Hour)),
		},
	}

	agg := Aggregate(Records(cars, manual), 2024, time.UTC)

	marBucket := agg.Monthly[2]
	assert.Equal(t, "Mar", marBucket.Month)
	assert.Equal(t, int64(1000000), marBucket.Revenue)
	assert.Equal(t, int64(150000), marBucket.Profit)
	assert.Equal(t, 3, marBucket.Count)

	assert.Equal(t, int64(1000000), agg.Revenue)
	assert.Equal(t, int64(150000), agg.Profit)
	assert.Equal(t, 3, agg.Count())
}

func TestAggregateUnknownCostCountsRevenueButNoProfit(t *testing.T) {
	soldAt := timePtr(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))
	records := []domain.SaleRecord{
		{SellPrice: 100000, PurchasePrice: nil, SoldAt: soldAt},
		{SellPrice: 200000, PurchasePrice: int64Ptr(0), SoldAt: soldAt},
		{SellPrice: 300000, PurchasePrice: int64Ptr(-50000), SoldAt: soldAt},
	}

	agg := Aggregate(records, 2024, time.UTC)

	jun := agg.Monthly[5]
	assert.Equal(t, int64(600000), jun.Revenue)
	assert.Zero(t, jun.Profit)
	assert.Equal(t, 3, jun.Count)
}

func TestAggregateSkipsRecordsWithoutSoldDate(t *testing.T) {
	records := []domain.SaleRecord{
		{SellPrice: 100000, SoldAt: nil},
		{SellPrice: 250000, SoldAt: timePtr(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC))},
	}

	agg := Aggregate(records, 2024, time.UTC)

	assert.Equal(t, int64(250000), agg.Revenue)
	assert.Equal(t, 1, agg.Count())
}

func TestAggregateAttributesMonthsInBusinessZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)

	// 18:45 UTC on Dec 31 is already Jan 1 in IST.
	newYearEve := time.Date(2024, time.December, 31, 18, 45, 0, 0, time.UTC)
	records := []domain.SaleRecord{
		{SellPrice: 500000, SoldAt: &newYearEve},
	}

	agg2024 := Aggregate(records, 2024, ist)
	assert.Zero(t, agg2024.Revenue)
	assert.Zero(t, agg2024.Count())

	agg2025 := Aggregate(records, 2025, ist)
	assert.Equal(t, int64(500000), agg2025.Monthly[0].Revenue)
	assert.Equal(t, 1, agg2025.Monthly[0].Count)
}

func TestYearTotalsEqualBucketSums(t *testing.T) {
	records := []domain.SaleRecord{
		{SellPrice: 100, PurchasePrice: int64Ptr(40), SoldAt: timePtr(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC))},
		{SellPrice: 200, PurchasePrice: int64Ptr(150), SoldAt: timePtr(time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC))},
		{SellPrice: 300, SoldAt: timePtr(time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC))},
	}

	agg := Aggregate(records, 2024, time.UTC)

	var revenue, profit int64
	for _, m := range agg.Monthly {
		revenue += m.Revenue
		profit += m.Profit
	}
	assert.Equal(t, revenue, agg.Revenue)
	assert.Equal(t, profit, agg.Profit)
}

func TestCarSaleRecordPrefersFinalSellPrice(t *testing.T) {
	tests := []struct {
		name     string
		car      domain.Car
		wantSell int64
	}{
		{
			name:     "final price set",
			car:      domain.Car{Price: 480000, FinalSellPrice: int64Ptr(500000)},
			wantSell: 500000,
		},
		{
			name:     "no final price falls back to list price",
			car:      domain.Car{Price: 480000},
			wantSell: 480000,
		},
		{
			name:     "zero final price falls back to list price",
			car:      domain.Car{Price: 480000, FinalSellPrice: int64Ptr(0)},
			wantSell: 480000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSell, tt.car.SaleRecord().SellPrice)
		})
	}
}

func TestYearBoundsHalfOpenInterval(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)

	from, to := YearBounds(2024, ist)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, ist), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, ist), to)
}
