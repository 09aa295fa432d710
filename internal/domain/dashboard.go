package domain

// MonthBucket is one calendar month of sales. The dashboard always renders
// twelve of these, zero-filled for quiet months, so the chart keeps a fixed
// width.
type MonthBucket struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
	Profit  int64  `json:"profit"`
	Count   int    `json:"count"`
}

// InventoryStats are the simple counts shown at the top of the dashboard.
type InventoryStats struct {
	TotalCars     int `json:"total_cars"`
	SoldCars      int `json:"sold_cars"`
	AvailableCars int `json:"available_cars"`
}

// DashboardPayload is the full dashboard response, and also the unit the
// presentation cache stores.
type DashboardPayload struct {
	Stats           InventoryStats  `json:"stats"`
	MonthlyData     []MonthBucket   `json:"monthly_data"`
	YearRevenue     int64           `json:"year_revenue"`
	YearProfit      int64           `json:"year_profit"`
	YearlySummaries []YearlySummary `json:"yearly_summaries"`
}
