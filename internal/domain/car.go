package domain

import (
	"time"

	"github.com/lib/pq"
)

// Car is a catalog listing. Sold listings keep their row and carry the
// buyer details plus the final negotiated price.
type Car struct {
	ID             string         `json:"id" db:"id"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	Title          string         `json:"title" db:"title"`
	Brand          string         `json:"brand" db:"brand"`
	Model          string         `json:"model" db:"model"`
	Year           int            `json:"year" db:"year"`
	Price          int64          `json:"price" db:"price"`
	PurchasePrice  *int64         `json:"purchase_price,omitempty" db:"purchase_price"`
	KmDriven       int            `json:"km_driven" db:"km_driven"`
	FuelType       string         `json:"fuel_type" db:"fuel_type"`
	Transmission   string         `json:"transmission" db:"transmission"`
	Color          string         `json:"color" db:"color"`
	Description    string         `json:"description" db:"description"`
	Images         pq.StringArray `json:"images" db:"images"`
	IsSold         bool           `json:"is_sold" db:"is_sold"`
	IsFeatured     bool           `json:"is_featured" db:"is_featured"`
	Ownership      int            `json:"ownership" db:"ownership"`
	Location       string         `json:"location" db:"location"`
	SoldToName     *string        `json:"sold_to_name,omitempty" db:"sold_to_name"`
	SoldToPhone    *string        `json:"sold_to_phone,omitempty" db:"sold_to_phone"`
	SoldToAddress  *string        `json:"sold_to_address,omitempty" db:"sold_to_address"`
	SoldToNotes    *string        `json:"sold_to_notes,omitempty" db:"sold_to_notes"`
	FinalSellPrice *int64         `json:"final_sell_price,omitempty" db:"final_sell_price"`
	SoldAt         *time.Time     `json:"sold_at,omitempty" db:"sold_at"`
	DeletedAt      *time.Time     `json:"-" db:"deleted_at"`
}

// SaleRecord normalizes a sold listing for aggregation. The final negotiated
// price is authoritative once set; the list price is the fallback for sales
// that were never formally closed with one.
func (c *Car) SaleRecord() SaleRecord {
	sell := c.Price
	if c.FinalSellPrice != nil && *c.FinalSellPrice > 0 {
		sell = *c.FinalSellPrice
	}
	return SaleRecord{
		Source:        SaleSourceListed,
		SellPrice:     sell,
		PurchasePrice: c.PurchasePrice,
		SoldAt:        c.SoldAt,
	}
}

// CarSaleDetails closes a listing: the negotiated price plus buyer details.
// FinalSellPrice may be nil when the sale was recorded without formally
// agreeing a figure distinct from the list price.
type CarSaleDetails struct {
	FinalSellPrice *int64
	SoldToName     string
	SoldToPhone    string
	SoldToAddress  string
	SoldToNotes    string
	SoldAt         time.Time
}

// FuelTypes and Transmissions are the accepted values for listing forms.
var (
	FuelTypes     = []string{"Petrol", "Diesel", "CNG", "Electric", "Hybrid"}
	Transmissions = []string{"Manual", "Automatic"}
)
