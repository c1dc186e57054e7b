package models

import "time"

// Condition is a product's wear state.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

// LowStockThreshold is the quantity at or below which stock is reported as low.
const LowStockThreshold = 5

type Product struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	CategoryID     int64          `json:"categoryId"`
	CategoryName   string         `json:"categoryName"`
	SellerID       int64          `json:"sellerId"`
	SellerName     string         `json:"sellerName"`
	Images         []string       `json:"images"`
	Condition      Condition      `json:"condition"`
	Brand          string         `json:"brand,omitempty"`
	Model          string         `json:"model,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	StockQuantity  int            `json:"stockQuantity"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// InStock is true for active products with a positive quantity.
func (p Product) InStock() bool {
	return p.IsActive && p.StockQuantity > 0
}
