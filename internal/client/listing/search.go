package listing

import (
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

// SearchCategories keeps categories whose name or description contains term,
// ignoring case. An empty term returns the input unchanged.
func SearchCategories(categories []models.Category, term string) []models.Category {
	if term == "" {
		return categories
	}
	needle := strings.ToLower(term)

	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Description), needle) {
			out = append(out, c)
		}
	}
	return out
}

// MainCategories drops subcategories.
func MainCategories(categories []models.Category) []models.Category {
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.IsMain() {
			out = append(out, c)
		}
	}
	return out
}

// CountActive counts auctions whose server status is active.
func CountActive(auctions []models.Auction) int {
	n := 0
	for _, a := range auctions {
		if a.Status == models.AuctionActive {
			n++
		}
	}
	return n
}
