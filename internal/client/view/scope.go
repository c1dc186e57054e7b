// Package view ties asynchronous work to the lifetime of a rendered view.
//
// A Scope is opened when a page or card is shown and closed when it is
// discarded. Results that arrive after Close are dropped, and countdown
// tickers started through the scope are stopped by Close.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/lifecycle"
)

type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	tickers []*lifecycle.Ticker
}

// NewScope derives a scope from parent. Cancelling parent closes the
// scope's context but Close must still be called to stop its tickers.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context is cancelled when the scope closes. Pass it to remote calls made
// on behalf of the view.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Alive reports whether the view is still displayed.
func (s *Scope) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.ctx.Err() == nil
}

// Deliver runs fn only while the scope is alive and reports whether it ran.
// fn holds the scope lock, so Close waits for an in-flight delivery and no
// delivery starts after Close. fn must not call back into the scope.
func (s *Scope) Deliver(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.ctx.Err() != nil {
		return false
	}
	fn()
	return true
}

// StartCountdown starts a ticker owned by the scope. Each tick is delivered
// through Deliver. It returns nil when the scope is already closed.
func (s *Scope) StartCountdown(now lifecycle.Clock, end time.Time, interval time.Duration, onTick func(text string)) *lifecycle.Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	t := lifecycle.StartCountdown(s.ctx, now, end, interval, func(text string) {
		s.Deliver(func() { onTick(text) })
	})
	s.tickers = append(s.tickers, t)
	return t
}

// Close marks the scope dead, cancels its context and waits for every
// owned ticker to exit. It is idempotent.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	tickers := s.tickers
	s.tickers = nil
	s.mu.Unlock()

	s.cancel()
	for _, t := range tickers {
		t.Stop()
	}
}
