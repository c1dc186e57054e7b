package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

var ErrNoAuction = errors.New("no auction loaded")

// AuctionDetailPage shows one auction with its bid history and places bids.
type AuctionDetailPage struct {
	deps  *Deps
	scope *view.Scope
	hooks CardHooks

	mu   sync.Mutex
	card *AuctionCard
	bids []models.Bid
}

// NewAuctionDetailPage builds the page. hooks are passed to the auction's
// card; OnTick receives the live countdown.
func NewAuctionDetailPage(parent context.Context, deps *Deps, hooks CardHooks) *AuctionDetailPage {
	return &AuctionDetailPage{deps: deps, scope: view.NewScope(parent), hooks: hooks}
}

// Load fetches the auction and its bids. A failed bid history is logged
// and shown as empty; a failed auction fetch keeps the previous state.
func (p *AuctionDetailPage) Load(id int64) error {
	ctx := p.scope.Context()

	a, err := p.deps.Auctions.Get(ctx, id)
	if err != nil {
		reportFailure(p.scope, p.deps, MsgLoadAuction, err)
		return err
	}

	bids, err := p.deps.Auctions.Bids(ctx, id)
	if err != nil {
		p.deps.logger().Warn(ctx, "bid history unavailable", "auction_id", id, "error", err)
		bids = nil
	}

	var old *AuctionCard
	p.scope.Deliver(func() {
		p.mu.Lock()
		old = p.card
		p.card = NewAuctionCard(ctx, p.deps, a, p.hooks)
		p.bids = bids
		p.mu.Unlock()
	})
	if old != nil {
		old.Close()
	}
	return nil
}

// Card is nil until the first successful Load.
func (p *AuctionDetailPage) Card() *AuctionCard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.card
}

func (p *AuctionDetailPage) Bids() []models.Bid {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Bid(nil), p.bids...)
}

// PlaceBid submits amount for the loaded auction. Call it after the card's
// OnBidClick allowed the bid. The auction is reloaded after a successful
// bid so the new price shows.
func (p *AuctionDetailPage) PlaceBid(amount float64) (models.Bid, error) {
	card := p.Card()
	if card == nil {
		return models.Bid{}, ErrNoAuction
	}
	id := card.Auction().ID

	bid, err := p.deps.Auctions.PlaceBid(p.scope.Context(), id, amount)
	if err != nil {
		msg := client.Message(err, MsgBidFailed)
		p.scope.Deliver(func() { p.deps.Notifier.ShowError(msg) })
		p.deps.logger().Warn(p.scope.Context(), "bid failed", "auction_id", id, "amount", amount, "error", err)
		return models.Bid{}, err
	}

	p.scope.Deliver(func() { p.deps.Notifier.ShowSuccess(MsgBidPlaced) })
	p.deps.logger().Info(p.scope.Context(), "bid placed", "auction_id", id, "amount", amount, "bid_id", bid.ID)
	if err := p.Load(id); err != nil {
		p.deps.logger().Debug(p.scope.Context(), "reload after bid failed", "auction_id", id, "error", err)
	}
	return bid, nil
}

func (p *AuctionDetailPage) Close() {
	p.mu.Lock()
	card := p.card
	p.mu.Unlock()
	if card != nil {
		card.Close()
	}
	p.scope.Close()
}
