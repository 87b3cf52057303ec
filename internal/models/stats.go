package models

// DashboardStats is recomputed per request from independent queries; the
// figures are not snapshot-isolated against concurrent status updates.
type DashboardStats struct {
	TotalCreators   int64         `json:"total_creators"`
	ActiveCreators  int64         `json:"active_creators"`
	TotalRevenue    float64       `json:"total_revenue"`
	TotalPaidOut    float64       `json:"total_paid_out"`
	PendingPayouts  float64       `json:"pending_payouts"`
	TotalSupporters int64         `json:"total_supporters"`
	Wishlist        WishlistStats `json:"wishlist"`
	Growth          GrowthStats   `json:"growth"`
	Charts          ChartData     `json:"charts"`
}

type WishlistStats struct {
	TotalItems    int64   `json:"total_items"`
	TotalValue    float64 `json:"total_value"`
	TotalFunded   float64 `json:"total_funded"`
	PriorityItems int64   `json:"priority_items"`
	FundedItems   int64   `json:"funded_items"`
}

type GrowthStats struct {
	Revenue float64 `json:"revenue"`
}

type ChartData struct {
	Revenue  ChartSeries `json:"revenue"`
	Creators ChartSeries `json:"creators"`
}

// ChartSeries pairs short month labels with the bucketed values for the
// trailing six months.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
