package controller

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/gate"
	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

// SellerPage is the seller area: own auctions and products plus the
// statistics the backend computes.
type SellerPage struct {
	Auctions Collection[models.Auction]
	Products Collection[models.Product]

	deps  *Deps
	scope *view.Scope
	cards *cardSet

	mu    sync.Mutex
	stats models.SellerStats
}

func NewSellerPage(parent context.Context, deps *Deps) *SellerPage {
	p := &SellerPage{deps: deps, scope: view.NewScope(parent)}
	p.Auctions.init(deps.pageSize())
	p.Products.init(deps.pageSize())
	p.cards = newCardSet(p.scope.Context(), deps, CardHooks{
		OnBid:          func(id int64) { deps.Nav.Navigate(AuctionPath(id), nil) },
		OnWatchChanged: func(int64, bool) { p.loadAuctions() },
	})
	return p
}

// Open checks access and loads the seller data. Anonymous users go to
// login; non-sellers are told they lack privileges and sent home.
func (p *SellerPage) Open() gate.Decision {
	d := gate.SellerArea(p.deps.Session.IsAuthenticated(), p.deps.Session.IsSeller())
	switch d.Outcome {
	case gate.RedirectLogin:
		p.deps.Nav.Navigate(PathLogin, nil)
		return d
	case gate.Rejected:
		p.deps.Notifier.ShowError(MsgSellerOnly)
		p.deps.Nav.Navigate(PathHome, nil)
		return d
	}

	p.loadAuctions()
	items, err := p.deps.Products.Mine(p.scope.Context())
	_ = deliverList(p.scope, p.deps, &p.Products, items, err, MsgLoadProducts)

	stats, err := p.deps.Stats.Seller(p.scope.Context())
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadStats, err)
	} else {
		p.scope.Deliver(func() {
			p.mu.Lock()
			p.stats = stats
			p.mu.Unlock()
		})
	}
	return d
}

func (p *SellerPage) loadAuctions() {
	items, err := p.deps.Auctions.Mine(p.scope.Context())
	_ = deliverList(p.scope, p.deps, &p.Auctions, items, err, MsgLoadAuctions)
}

// Stats are the backend figures, unmodified.
func (p *SellerPage) Stats() models.SellerStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// ActiveAuctions counts the seller's loaded auctions that are active.
func (p *SellerPage) ActiveAuctions() int {
	return listing.CountActive(p.Auctions.All())
}

func (p *SellerPage) Cards() []*AuctionCard {
	return p.cards.sync(p.Auctions.Visible())
}

func (p *SellerPage) AddToCart(product models.Product) gate.Decision {
	return AddToCart(p.deps, product)
}

func (p *SellerPage) Close() {
	p.cards.closeAll()
	p.scope.Close()
}
