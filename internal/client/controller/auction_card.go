package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/gate"
	"github.com/dmitrijs2005/auctionhub/internal/client/lifecycle"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
	"github.com/dmitrijs2005/auctionhub/internal/client/watchlist"
)

// CardHooks are optional callbacks from an AuctionCard to its owner.
type CardHooks struct {
	// OnBid receives the bid intent after the gate allowed it.
	OnBid func(auctionID int64)
	// OnWatchChanged runs after a confirmed watch toggle.
	OnWatchChanged func(auctionID int64, watched bool)
	// OnTick runs on the countdown goroutine with each new text.
	OnTick func(auctionID int64, text string)
}

type AuctionCard struct {
	deps  *Deps
	scope *view.Scope
	hooks CardHooks

	mu       sync.Mutex
	auction  models.Auction
	timeLeft string
}

// NewAuctionCard renders a and, while it is upcoming or active, keeps its
// time-left text current until Close.
func NewAuctionCard(parent context.Context, deps *Deps, a models.Auction, hooks CardHooks) *AuctionCard {
	c := &AuctionCard{
		deps:    deps,
		scope:   view.NewScope(parent),
		hooks:   hooks,
		auction: a,
	}

	now := deps.now()
	c.timeLeft = lifecycle.CountdownText(now, a.EndDate)
	if lifecycle.NeedsCountdown(lifecycle.DisplayStatus(now, a)) {
		c.scope.StartCountdown(deps.Clock, a.EndDate, deps.CountdownInterval, c.tick)
	}
	return c
}

func (c *AuctionCard) tick(text string) {
	c.mu.Lock()
	c.timeLeft = text
	id := c.auction.ID
	c.mu.Unlock()

	if c.hooks.OnTick != nil {
		c.hooks.OnTick(id, text)
	}
}

func (c *AuctionCard) Auction() models.Auction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.auction
}

func (c *AuctionCard) TimeLeft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeLeft
}

func (c *AuctionCard) StatusBadge() lifecycle.Badge {
	return lifecycle.ClassifyStatus(c.Auction().Status)
}

func (c *AuctionCard) ReserveProgress() float64 {
	return lifecycle.ReserveProgress(c.Auction())
}

func (c *AuctionCard) Watched() bool {
	return c.Auction().Watched()
}

// update swaps in fresher data for the same auction and end date.
func (c *AuctionCard) update(a models.Auction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auction = a
}

// OnBidClick gates a bid. An anonymous user is told to log in and sent to
// the login view without any remote call; a closed auction yields a
// warning; otherwise the bid intent goes to OnBid.
func (c *AuctionCard) OnBidClick() gate.Decision {
	a := c.Auction()
	d := gate.Bid(c.deps.Session.IsAuthenticated(), a.Status)

	switch d.Outcome {
	case gate.RedirectLogin:
		c.deps.Notifier.ShowError(MsgLoginToBid)
		c.deps.Nav.Navigate(PathLogin, nil)
	case gate.Rejected:
		c.deps.Notifier.ShowWarning(MsgAuctionNotActive)
	case gate.Allowed:
		if c.hooks.OnBid != nil {
			c.hooks.OnBid(a.ID)
		}
	}
	return d
}

// OnWatchClick toggles the watch flag through the coordinator. The card's
// flag changes only after the server confirmed the toggle. A click while a
// toggle for the same auction is in flight returns ErrTogglePending and
// shows nothing.
func (c *AuctionCard) OnWatchClick() error {
	a := c.Auction()

	res, err := c.deps.Watchlist.Toggle(c.scope.Context(), a.ID, a.Watched())
	switch {
	case errors.Is(err, watchlist.ErrTogglePending):
		return err
	case err != nil:
		c.scope.Deliver(func() { c.deps.Notifier.ShowError(MsgWatchFailed) })
		return err
	}

	if res.Decision.Outcome == gate.RedirectLogin {
		c.deps.Notifier.ShowError(MsgLoginToWatch)
		c.deps.Nav.Navigate(PathLogin, nil)
		return nil
	}

	applied := c.scope.Deliver(func() {
		c.mu.Lock()
		c.auction.SetWatched(res.Watched)
		c.mu.Unlock()
	})
	if applied && c.hooks.OnWatchChanged != nil {
		c.hooks.OnWatchChanged(a.ID, res.Watched)
	}
	return nil
}

// Close stops the countdown and drops late results.
func (c *AuctionCard) Close() {
	c.scope.Close()
}

// cardSet keeps one card per visible auction and closes cards that leave
// the window.
type cardSet struct {
	parent context.Context
	deps   *Deps
	hooks  CardHooks

	mu    sync.Mutex
	cards map[int64]*AuctionCard
}

func newCardSet(parent context.Context, deps *Deps, hooks CardHooks) *cardSet {
	return &cardSet{parent: parent, deps: deps, hooks: hooks, cards: make(map[int64]*AuctionCard)}
}

func (s *cardSet) sync(visible []models.Auction) []*AuctionCard {
	s.mu.Lock()
	keep := make(map[int64]*AuctionCard, len(visible))
	out := make([]*AuctionCard, 0, len(visible))
	var stale []*AuctionCard

	for _, a := range visible {
		c, ok := keep[a.ID]
		if !ok {
			c, ok = s.cards[a.ID]
			delete(s.cards, a.ID)
			if ok && !c.Auction().EndDate.Equal(a.EndDate) {
				stale = append(stale, c)
				ok = false
			}
			if ok {
				c.update(a)
			} else {
				c = NewAuctionCard(s.parent, s.deps, a, s.hooks)
			}
			keep[a.ID] = c
		}
		out = append(out, c)
	}
	for _, c := range s.cards {
		stale = append(stale, c)
	}
	s.cards = keep
	s.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return out
}

func (s *cardSet) closeAll() {
	s.mu.Lock()
	cards := s.cards
	s.cards = make(map[int64]*AuctionCard)
	s.mu.Unlock()

	for _, c := range cards {
		c.Close()
	}
}
