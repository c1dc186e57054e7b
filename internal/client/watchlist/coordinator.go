// Package watchlist serialises watch/unwatch requests per auction and keeps
// the client's watch flag in step with the server.
//
// The local flag is flipped only after the server confirms the change; a
// failed request leaves it untouched. While a request for an auction is in
// flight, further toggles for the same auction are refused with
// ErrTogglePending and never reach the server.
package watchlist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/gate"
	"github.com/dmitrijs2005/auctionhub/internal/client/notify"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
)

var ErrTogglePending = errors.New("watch toggle already in progress")

const (
	MsgWatched   = "Added to watchlist"
	MsgUnwatched = "Removed from watchlist"
)

// Remote is the watch endpoint pair of the auction API.
type Remote interface {
	Watch(ctx context.Context, auctionID int64) error
	Unwatch(ctx context.Context, auctionID int64) error
}

// Authenticator reports whether a user session is present.
type Authenticator interface {
	IsAuthenticated() bool
}

type State int

const (
	Unwatched State = iota
	Pending
	Watched
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Watched:
		return "watched"
	default:
		return "unwatched"
	}
}

// Listener is told about every confirmed change.
type Listener func(auctionID int64, watched bool)

// Result is what a toggle ended with. Watched is the flag the caller should
// display afterwards.
type Result struct {
	Decision gate.Decision
	Watched  bool
}

type Coordinator struct {
	remote   Remote
	auth     Authenticator
	notifier notify.Notifier
	log      logging.Logger

	mu        sync.Mutex
	pending   map[int64]bool
	watched   map[int64]bool
	listeners []Listener
}

func New(remote Remote, auth Authenticator, notifier notify.Notifier, log logging.Logger) *Coordinator {
	return &Coordinator{
		remote:   remote,
		auth:     auth,
		notifier: notifier,
		log:      log.With("component", "watchlist"),
		pending:  make(map[int64]bool),
		watched:  make(map[int64]bool),
	}
}

// Subscribe registers l for confirmed changes.
func (c *Coordinator) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// State returns the coordinator's view of auctionID. Auctions it has never
// toggled report Unwatched; the caller's own flag is authoritative for those.
func (c *Coordinator) State(auctionID int64) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.pending[auctionID]:
		return Pending
	case c.watched[auctionID]:
		return Watched
	default:
		return Unwatched
	}
}

// Toggle flips the watch state of auctionID, where currentlyWatched is the
// flag the caller is displaying.
//
// A gate refusal is reported through Result.Decision with a nil error. A
// concurrent toggle for the same auction returns ErrTogglePending. Remote
// failures are wrapped and returned with Result.Watched unchanged.
func (c *Coordinator) Toggle(ctx context.Context, auctionID int64, currentlyWatched bool) (Result, error) {
	d := gate.Watch(c.auth.IsAuthenticated())
	res := Result{Decision: d, Watched: currentlyWatched}
	if !d.Allowed() {
		return res, nil
	}

	c.mu.Lock()
	if c.pending[auctionID] {
		c.mu.Unlock()
		c.log.Debug(ctx, "toggle ignored, request in flight", "auction_id", auctionID)
		return res, ErrTogglePending
	}
	c.pending[auctionID] = true
	c.mu.Unlock()

	var err error
	if currentlyWatched {
		err = c.remote.Unwatch(ctx, auctionID)
	} else {
		err = c.remote.Watch(ctx, auctionID)
	}

	c.mu.Lock()
	delete(c.pending, auctionID)
	if err != nil {
		c.mu.Unlock()
		c.log.Warn(ctx, "watch toggle failed", "auction_id", auctionID, "error", err)
		return res, fmt.Errorf("toggle watch for auction %d: %w", auctionID, err)
	}
	watched := !currentlyWatched
	c.watched[auctionID] = watched
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	c.log.Info(ctx, "watch toggled", "auction_id", auctionID, "watched", watched)
	if watched {
		c.notifier.ShowSuccess(MsgWatched)
	} else {
		c.notifier.ShowSuccess(MsgUnwatched)
	}
	for _, l := range listeners {
		l(auctionID, watched)
	}

	res.Watched = watched
	return res, nil
}
