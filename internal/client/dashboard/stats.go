// Package dashboard derives ratios from the counters the API reports.
package dashboard

import "github.com/dmitrijs2005/auctionhub/internal/client/models"

// BidSuccessRate is won auctions as a percentage of bids placed; 0 when no
// bids were placed.
func BidSuccessRate(s models.DashboardStats) float64 {
	if s.TotalBids == 0 {
		return 0
	}
	return float64(s.WonAuctions) / float64(s.TotalBids) * 100
}

// AverageBidAmount is total spend divided by bids placed; 0 when no bids
// were placed.
func AverageBidAmount(s models.DashboardStats) float64 {
	if s.TotalBids == 0 {
		return 0
	}
	return s.TotalSpent / float64(s.TotalBids)
}

// Summary bundles the raw counters with the derived ratios.
type Summary struct {
	Stats          models.DashboardStats
	SuccessRate    float64
	AverageBid     float64
	WatchlistCount int
}

// Summarize computes the derived ratios. watchlistCount overrides the
// counter from the API with the length of the freshly loaded watch list.
func Summarize(s models.DashboardStats, watchlistCount int) Summary {
	s.WatchlistCount = watchlistCount
	return Summary{
		Stats:          s,
		SuccessRate:    BidSuccessRate(s),
		AverageBid:     AverageBidAmount(s),
		WatchlistCount: watchlistCount,
	}
}
