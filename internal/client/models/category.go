package models

type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	ParentID      *int64     `json:"parentId,omitempty"`
	Subcategories []Category `json:"subcategories,omitempty"`
	AuctionCount  int        `json:"auctionCount,omitempty"`
}

// IsMain reports whether the category sits at the top of the hierarchy.
func (c Category) IsMain() bool {
	return c.ParentID == nil
}
