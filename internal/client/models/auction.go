package models

import "time"

// AuctionStatus is the lifecycle phase reported by the API.
type AuctionStatus string

const (
	AuctionUpcoming  AuctionStatus = "upcoming"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

type Auction struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	StartingPrice float64       `json:"startingPrice"`
	CurrentPrice  float64       `json:"currentPrice"`
	ReservePrice  *float64      `json:"reservePrice,omitempty"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	Status        AuctionStatus `json:"status"`
	SellerID      int64         `json:"sellerId"`
	SellerName    string        `json:"sellerName"`
	CategoryID    int64         `json:"categoryId"`
	CategoryName  string        `json:"categoryName"`
	Images        []string      `json:"images"`
	Bids          []Bid         `json:"bids"`
	TotalBids     int           `json:"totalBids"`
	IsWatched     *bool         `json:"isWatched,omitempty"`
}

// Watched reports the convenience flag, treating an absent value as false.
func (a Auction) Watched() bool {
	return a.IsWatched != nil && *a.IsWatched
}

// SetWatched patches the local replica's watch flag.
func (a *Auction) SetWatched(v bool) {
	a.IsWatched = &v
}

type Bid struct {
	ID         int64     `json:"id"`
	AuctionID  int64     `json:"auctionId"`
	BidderID   int64     `json:"bidderId"`
	BidderName string    `json:"bidderName"`
	Amount     float64   `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

type PlaceBidRequest struct {
	AuctionID int64   `json:"auctionId"`
	Amount    float64 `json:"amount"`
}
