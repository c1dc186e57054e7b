package lifecycle

import (
	"math"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

// Tag is a presentation colour hint.
type Tag string

const (
	TagAccent  Tag = "accent"
	TagPrimary Tag = "primary"
	TagWarn    Tag = "warn"
	TagDefault Tag = "default"
)

// Badge pairs a tag with its display label.
type Badge struct {
	Tag   Tag
	Label string
}

// unknownLabel is used when the raw value is empty.
const unknownLabel = "Unknown"

// ClassifyStatus maps an auction status to its badge. It is total: values
// the client does not model get TagDefault and still a capitalised label.
func ClassifyStatus(status models.AuctionStatus) Badge {
	b := Badge{Tag: TagDefault, Label: Capitalize(string(status))}
	switch status {
	case models.AuctionActive:
		b.Tag = TagAccent
	case models.AuctionUpcoming:
		b.Tag = TagPrimary
	case models.AuctionEnded:
		b.Tag = TagWarn
	}
	return b
}

// ClassifyCondition maps a product condition to its badge, with the same
// fallback rules as ClassifyStatus.
func ClassifyCondition(c models.Condition) Badge {
	b := Badge{Tag: TagDefault, Label: Capitalize(string(c))}
	switch c {
	case models.ConditionNew:
		b.Tag = TagAccent
	case models.ConditionUsed:
		b.Tag = TagPrimary
	case models.ConditionRefurbished:
		b.Tag = TagWarn
	}
	return b
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return unknownLabel
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// DisplayStatus re-derives the phase from the auction's dates so stale
// server values do not linger on screen. Cancelled auctions stay cancelled.
func DisplayStatus(now time.Time, a models.Auction) models.AuctionStatus {
	switch {
	case a.Status == models.AuctionCancelled:
		return models.AuctionCancelled
	case !a.StartDate.IsZero() && now.Before(a.StartDate):
		return models.AuctionUpcoming
	case !now.Before(a.EndDate):
		return models.AuctionEnded
	default:
		return models.AuctionActive
	}
}

// NeedsCountdown reports whether a card should keep a live countdown.
func NeedsCountdown(status models.AuctionStatus) bool {
	return status == models.AuctionActive || status == models.AuctionUpcoming
}

// ReserveProgress is the current price as a percentage of the reserve,
// capped at 100. Auctions without a positive reserve report 0.
func ReserveProgress(a models.Auction) float64 {
	if a.ReservePrice == nil || *a.ReservePrice <= 0 {
		return 0
	}
	return math.Min(a.CurrentPrice / *a.ReservePrice * 100, 100)
}

// StockStatus describes a product's availability.
func StockStatus(p models.Product) Badge {
	switch {
	case !p.IsActive:
		return Badge{Tag: TagWarn, Label: "Inactive"}
	case p.StockQuantity <= 0:
		return Badge{Tag: TagWarn, Label: "Out of Stock"}
	case p.StockQuantity <= models.LowStockThreshold:
		return Badge{Tag: TagAccent, Label: "Low Stock"}
	default:
		return Badge{Tag: TagPrimary, Label: "In Stock"}
	}
}

// RatingTag colours a seller's average rating.
func RatingTag(rating float64) Tag {
	switch {
	case rating >= 4.5:
		return TagAccent
	case rating >= 4.0:
		return TagPrimary
	case rating >= 3.0:
		return TagWarn
	default:
		return TagDefault
	}
}

// RatingStars marks the filled stars out of five (whole stars only).
func RatingStars(rating float64) [5]bool {
	var stars [5]bool
	full := int(math.Floor(rating))
	for i := range stars {
		stars[i] = i < full
	}
	return stars
}
