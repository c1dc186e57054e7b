package controller

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

// CategoryPage browses main categories, their subcategories and a local
// search over the main list.
type CategoryPage struct {
	Collection[models.Category]

	deps  *Deps
	scope *view.Scope

	mu       sync.Mutex
	main     []models.Category
	selected int64
}

func NewCategoryPage(parent context.Context, deps *Deps) *CategoryPage {
	p := &CategoryPage{deps: deps, scope: view.NewScope(parent)}
	p.init(deps.pageSize())
	return p
}

// Load fetches the main categories and shows them.
func (p *CategoryPage) Load() error {
	items, err := p.deps.Categories.Main(p.scope.Context())
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadCategories, err)
		return err
	}
	p.scope.Deliver(func() {
		p.mu.Lock()
		p.main = items
		p.selected = 0
		p.mu.Unlock()
		p.replace(items)
	})
	return nil
}

// Open shows the subcategories of parentID.
func (p *CategoryPage) Open(parentID int64) error {
	items, err := p.deps.Categories.Subcategories(p.scope.Context(), parentID)
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadSubcategories, err)
		return err
	}
	p.scope.Deliver(func() {
		p.mu.Lock()
		p.selected = parentID
		p.mu.Unlock()
		p.replace(items)
	})
	p.ResetPage()
	return nil
}

// Search narrows the main categories to those matching term and returns
// to the first page. An empty term restores the full main list.
func (p *CategoryPage) Search(term string) {
	p.mu.Lock()
	main := p.main
	p.mu.Unlock()

	p.replace(listing.SearchCategories(main, term))
	p.ResetPage()
}

// Back returns from a subcategory list to the main categories.
func (p *CategoryPage) Back() {
	p.mu.Lock()
	main := p.main
	p.selected = 0
	p.mu.Unlock()

	p.replace(main)
	p.ResetPage()
}

// Selected is the parent whose subcategories are shown, or 0.
func (p *CategoryPage) Selected() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

func (p *CategoryPage) Select(c models.Category) {
	p.deps.Nav.Navigate(CategoryPath(c.ID), nil)
}

func (p *CategoryPage) ViewAuctions(c models.Category) {
	p.deps.Nav.Navigate(PathAuctions, url.Values{"category": {strconv.FormatInt(c.ID, 10)}})
}

func (p *CategoryPage) ViewProducts(c models.Category) {
	p.deps.Nav.Navigate(PathProducts, url.Values{"category": {strconv.FormatInt(c.ID, 10)}})
}

func (p *CategoryPage) Close() {
	p.scope.Close()
}
