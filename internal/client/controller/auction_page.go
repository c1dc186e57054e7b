package controller

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

// AuctionParams are the query parameters the auctions view accepts.
type AuctionParams struct {
	CategoryID string
	SellerID   string
	Watched    bool
}

// AuctionPage lists auctions with filters, a watched-only mode and
// client-side paging.
type AuctionPage struct {
	Collection[models.Auction]

	deps  *Deps
	scope *view.Scope
	cards *cardSet

	mu         sync.Mutex
	form       map[string]string
	filter     listing.Filter
	watched    bool
	categories []models.Category
}

func NewAuctionPage(parent context.Context, deps *Deps) *AuctionPage {
	p := &AuctionPage{
		deps:   deps,
		scope:  view.NewScope(parent),
		form:   map[string]string{},
		filter: listing.Filter{},
	}
	p.init(deps.pageSize())
	p.cards = newCardSet(p.scope.Context(), deps, CardHooks{
		OnBid:          p.onBid,
		OnWatchChanged: p.onWatchChanged,
	})
	return p
}

// Open loads the category list and the first result set.
func (p *AuctionPage) Open(params AuctionParams) error {
	p.loadCategories()

	p.mu.Lock()
	if params.CategoryID != "" {
		p.form[listing.FieldCategoryID] = params.CategoryID
		p.filter = p.filter.With(listing.FieldCategoryID, params.CategoryID)
	}
	if params.SellerID != "" {
		p.filter = p.filter.With(listing.FieldSellerID, params.SellerID)
	}
	p.watched = params.Watched
	p.mu.Unlock()

	return p.Load()
}

func (p *AuctionPage) loadCategories() {
	if p.deps.Categories == nil {
		return
	}
	cats, err := p.deps.Categories.All(p.scope.Context())
	if err != nil {
		p.deps.logger().Warn(p.scope.Context(), "category options unavailable", "error", err)
		return
	}
	p.scope.Deliver(func() {
		p.mu.Lock()
		p.categories = cats
		p.mu.Unlock()
	})
}

// Load fetches the result set for the current mode and filter. A newer load
// overwrites whatever an older one delivered.
func (p *AuctionPage) Load() error {
	p.mu.Lock()
	filter, watched := p.filter, p.watched
	p.mu.Unlock()

	if watched {
		items, err := p.deps.Auctions.Watched(p.scope.Context())
		return deliverList(p.scope, p.deps, &p.Collection, items, err, MsgLoadWatched)
	}
	items, err := p.deps.Auctions.List(p.scope.Context(), filter)
	return deliverList(p.scope, p.deps, &p.Collection, items, err, MsgLoadAuctions)
}

// ApplyFilters compiles raw form values, leaves watched mode, returns to
// the first page and reloads.
func (p *AuctionPage) ApplyFilters(raw map[string]string) error {
	p.mu.Lock()
	p.form = maps.Clone(raw)
	p.filter = listing.Compile(listing.AuctionFields, raw)
	p.watched = false
	p.mu.Unlock()

	p.ResetPage()
	return p.Load()
}

func (p *AuctionPage) ClearFilters() error {
	p.mu.Lock()
	p.form = map[string]string{}
	p.filter = listing.Filter{}
	p.watched = false
	p.mu.Unlock()

	p.ResetPage()
	return p.Load()
}

// ShowWatched switches to the watched auctions of the current user.
func (p *AuctionPage) ShowWatched() error {
	p.mu.Lock()
	p.watched = true
	p.mu.Unlock()

	p.ResetPage()
	return p.Load()
}

func (p *AuctionPage) Filter() listing.Filter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.filter)
}

func (p *AuctionPage) WatchedMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.watched
}

func (p *AuctionPage) Categories() []models.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.categories
}

// Cards returns live cards for the visible window.
func (p *AuctionPage) Cards() []*AuctionCard {
	return p.cards.sync(p.Visible())
}

func (p *AuctionPage) onBid(id int64) {
	p.deps.Nav.Navigate(AuctionPath(id), nil)
}

func (p *AuctionPage) onWatchChanged(id int64, watched bool) {
	if err := p.Load(); err != nil {
		p.deps.logger().Debug(p.scope.Context(), "reload after watch change failed", "auction_id", id, "watched", watched, "error", err)
	}
}

func (p *AuctionPage) Close() {
	p.cards.closeAll()
	p.scope.Close()
}
