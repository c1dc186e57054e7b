package controller

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/gate"
	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

type ProductParams struct {
	CategoryID string
	SellerID   string
}

type ProductPage struct {
	Collection[models.Product]

	deps  *Deps
	scope *view.Scope

	mu         sync.Mutex
	filter     listing.Filter
	categories []models.Category
}

func NewProductPage(parent context.Context, deps *Deps) *ProductPage {
	p := &ProductPage{deps: deps, scope: view.NewScope(parent), filter: listing.Filter{}}
	p.init(deps.pageSize())
	return p
}

func (p *ProductPage) Open(params ProductParams) error {
	if p.deps.Categories != nil {
		if cats, err := p.deps.Categories.All(p.scope.Context()); err == nil {
			p.scope.Deliver(func() {
				p.mu.Lock()
				p.categories = cats
				p.mu.Unlock()
			})
		}
	}

	p.mu.Lock()
	p.filter = p.filter.With(listing.FieldCategoryID, params.CategoryID).With(listing.FieldSellerID, params.SellerID)
	p.mu.Unlock()

	return p.Load()
}

func (p *ProductPage) Load() error {
	p.mu.Lock()
	filter := p.filter
	p.mu.Unlock()

	items, err := p.deps.Products.List(p.scope.Context(), filter)
	return deliverList(p.scope, p.deps, &p.Collection, items, err, MsgLoadProducts)
}

func (p *ProductPage) ApplyFilters(raw map[string]string) error {
	p.mu.Lock()
	p.filter = listing.Compile(listing.ProductFields, raw)
	p.mu.Unlock()

	p.ResetPage()
	return p.Load()
}

func (p *ProductPage) ClearFilters() error {
	p.mu.Lock()
	p.filter = listing.Filter{}
	p.mu.Unlock()

	p.ResetPage()
	return p.Load()
}

func (p *ProductPage) Filter() listing.Filter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.filter)
}

func (p *ProductPage) Categories() []models.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.categories
}

func (p *ProductPage) AddToCart(product models.Product) gate.Decision {
	return AddToCart(p.deps, product)
}

func (p *ProductPage) Select(product models.Product) {
	p.deps.Nav.Navigate(ProductPath(product.ID), nil)
}

func (p *ProductPage) Close() {
	p.scope.Close()
}
