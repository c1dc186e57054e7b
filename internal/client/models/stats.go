package models

// DashboardStats are the bidder-facing counters shown on the dashboard.
type DashboardStats struct {
	TotalBids       int     `json:"totalBids"`
	WonAuctions     int     `json:"wonAuctions"`
	ActiveBids      int     `json:"activeBids"`
	TotalSpent      float64 `json:"totalSpent"`
	WatchlistCount  int     `json:"watchlistCount"`
	FavoriteSellers int     `json:"favoriteSellers"`
}

// SellerStats are passed through from the API unmodified, apart from the
// auction/product counts the seller page recomputes from its own lists.
type SellerStats struct {
	TotalAuctions  int     `json:"totalAuctions"`
	ActiveAuctions int     `json:"activeAuctions"`
	TotalSales     int     `json:"totalSales"`
	TotalProducts  int     `json:"totalProducts"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AverageRating  float64 `json:"averageRating"`
	Reviews        int     `json:"reviews"`
}
