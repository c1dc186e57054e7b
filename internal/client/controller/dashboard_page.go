package controller

import (
	"context"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/dashboard"
	"github.com/dmitrijs2005/auctionhub/internal/client/gate"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

// RecommendedLimit caps the featured products shown on the dashboard.
const RecommendedLimit = 6

// DashboardPage is the personal area of a logged-in user.
type DashboardPage struct {
	deps  *Deps
	scope *view.Scope
	cards *cardSet

	mu            sync.Mutex
	watched       []models.Auction
	watchedLoaded bool
	recommended   []models.Product
	stats         models.DashboardStats
}

func NewDashboardPage(parent context.Context, deps *Deps) *DashboardPage {
	p := &DashboardPage{deps: deps, scope: view.NewScope(parent)}
	p.cards = newCardSet(p.scope.Context(), deps, CardHooks{
		OnBid:          func(id int64) { deps.Nav.Navigate(AuctionPath(id), nil) },
		OnWatchChanged: func(int64, bool) { p.loadWatched() },
	})
	return p
}

// Open sends anonymous users to login and otherwise loads every panel.
// A failing panel shows its message and leaves the others intact.
func (p *DashboardPage) Open() bool {
	if !p.deps.Session.IsAuthenticated() {
		p.deps.Nav.Navigate(PathLogin, nil)
		return false
	}

	p.loadWatched()

	products, err := p.deps.Products.Featured(p.scope.Context())
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadProducts, err)
	} else {
		if len(products) > RecommendedLimit {
			products = products[:RecommendedLimit]
		}
		p.scope.Deliver(func() {
			p.mu.Lock()
			p.recommended = products
			p.mu.Unlock()
		})
	}

	stats, err := p.deps.Stats.Dashboard(p.scope.Context())
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadStats, err)
	} else {
		p.scope.Deliver(func() {
			p.mu.Lock()
			p.stats = stats
			p.mu.Unlock()
		})
	}
	return true
}

func (p *DashboardPage) loadWatched() {
	items, err := p.deps.Auctions.Watched(p.scope.Context())
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadWatched, err)
		return
	}
	p.scope.Deliver(func() {
		p.mu.Lock()
		p.watched = items
		p.watchedLoaded = true
		p.mu.Unlock()
	})
}

// Summary combines the backend counters with the derived ratios. The
// watch list count comes from the loaded list when there is one.
func (p *DashboardPage) Summary() dashboard.Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := p.stats.WatchlistCount
	if p.watchedLoaded {
		count = len(p.watched)
	}
	return dashboard.Summarize(p.stats, count)
}

func (p *DashboardPage) Watched() []models.Auction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Auction(nil), p.watched...)
}

func (p *DashboardPage) Recommended() []models.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Product(nil), p.recommended...)
}

func (p *DashboardPage) Cards() []*AuctionCard {
	return p.cards.sync(p.Watched())
}

func (p *DashboardPage) AddToCart(product models.Product) gate.Decision {
	return AddToCart(p.deps, product)
}

// ViewAllWatched opens the auctions view in watched mode.
func (p *DashboardPage) ViewAllWatched() {
	p.deps.Nav.Navigate(PathAuctions, url.Values{"watched": {"true"}})
}

func (p *DashboardPage) Close() {
	p.cards.closeAll()
	p.scope.Close()
}
