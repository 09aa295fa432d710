package domain

import "time"

// SaleSource tags which physical table a sale record came from.
type SaleSource string

const (
	// SaleSourceListed is a catalog car whose sold flag is set.
	SaleSourceListed SaleSource = "LISTED"
	// SaleSourceManual is an off-platform sale logged directly by staff.
	SaleSourceManual SaleSource = "MANUAL"
)

// SaleRecord is the single shape the aggregator consumes, regardless of
// whether the sale came from the catalog or the manual register.
// A nil SoldAt keeps the record out of every bucket; a nil or non-positive
// PurchasePrice keeps it out of the profit sum but not revenue or count.
type SaleRecord struct {
	Source        SaleSource
	SellPrice     int64
	PurchasePrice *int64
	SoldAt        *time.Time
}

// ManualSale is a sale entered directly for a car never listed on the site.
type ManualSale struct {
	ID            string     `json:"id" db:"id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	CarTitle      string     `json:"car_title" db:"car_title"`
	Brand         string     `json:"brand" db:"brand"`
	Model         string     `json:"model" db:"model"`
	Year          *int       `json:"year,omitempty" db:"year"`
	SellPrice     int64      `json:"sell_price" db:"sell_price"`
	PurchasePrice *int64     `json:"purchase_price,omitempty" db:"purchase_price"`
	BuyerName     string     `json:"buyer_name" db:"buyer_name"`
	BuyerPhone    string     `json:"buyer_phone" db:"buyer_phone"`
	BuyerAddress  string     `json:"buyer_address" db:"buyer_address"`
	Notes         string     `json:"notes" db:"notes"`
	SoldAt        *time.Time `json:"sold_at,omitempty" db:"sold_at"`
}

// SaleRecord normalizes the manual entry for aggregation.
func (m *ManualSale) SaleRecord() SaleRecord {
	return SaleRecord{
		Source:        SaleSourceManual,
		SellPrice:     m.SellPrice,
		PurchasePrice: m.PurchasePrice,
		SoldAt:        m.SoldAt,
	}
}

// YearlySummary is the one-row-per-year archive of a closed year's totals.
type YearlySummary struct {
	Year          int   `json:"year" db:"year"`
	TotalRevenue  int64 `json:"total_revenue" db:"total_revenue"`
	TotalProfit   int64 `json:"total_profit" db:"total_profit"`
	TotalCarsSold int   `json:"total_cars_sold" db:"total_cars_sold"`
}
