package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

// HomePage shows featured and ending-soon auctions and popular categories.
type HomePage struct {
	deps       *Deps
	scope      *view.Scope
	featured   *cardSet
	endingSoon *cardSet

	mu         sync.Mutex
	featuredA  []models.Auction
	endingA    []models.Auction
	categories []models.Category
}

func NewHomePage(parent context.Context, deps *Deps) *HomePage {
	p := &HomePage{deps: deps, scope: view.NewScope(parent)}
	hooks := CardHooks{
		OnBid:          func(id int64) { deps.Nav.Navigate(AuctionPath(id), nil) },
		OnWatchChanged: func(int64, bool) { _ = p.Load() },
	}
	p.featured = newCardSet(p.scope.Context(), deps, hooks)
	p.endingSoon = newCardSet(p.scope.Context(), deps, hooks)
	return p
}

// Load fetches the three panels. Panels that fail keep their old content
// and a single message is shown.
func (p *HomePage) Load() error {
	ctx := p.scope.Context()

	featured, ferr := p.deps.Auctions.Featured(ctx)
	ending, eerr := p.deps.Auctions.EndingSoon(ctx)
	cats, cerr := p.deps.Categories.Popular(ctx)

	p.scope.Deliver(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if ferr == nil {
			p.featuredA = featured
		}
		if eerr == nil {
			p.endingA = ending
		}
		if cerr == nil {
			p.categories = cats
		}
	})

	if err := errors.Join(ferr, eerr, cerr); err != nil {
		reportFailure(p.scope, p.deps, MsgLoadHome, err)
		return err
	}
	return nil
}

func (p *HomePage) FeaturedCards() []*AuctionCard {
	p.mu.Lock()
	items := append([]models.Auction(nil), p.featuredA...)
	p.mu.Unlock()
	return p.featured.sync(items)
}

func (p *HomePage) EndingSoonCards() []*AuctionCard {
	p.mu.Lock()
	items := append([]models.Auction(nil), p.endingA...)
	p.mu.Unlock()
	return p.endingSoon.sync(items)
}

func (p *HomePage) PopularCategories() []models.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Category(nil), p.categories...)
}

func (p *HomePage) SelectCategory(c models.Category) {
	p.deps.Nav.Navigate(CategoryPath(c.ID), nil)
}

func (p *HomePage) GetStarted() {
	GetStarted(p.deps)
}

func (p *HomePage) Close() {
	p.featured.closeAll()
	p.endingSoon.closeAll()
	p.scope.Close()
}
