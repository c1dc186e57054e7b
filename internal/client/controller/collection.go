package controller

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/view"
)

// Collection is a fully loaded result set shown one page at a time.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	pager listing.Pager
}

func (c *Collection[T]) init(size int) {
	c.pager = listing.NewPager(size)
}

func (c *Collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// All returns a copy of every loaded item.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Visible returns a copy of the current page window.
func (c *Collection[T]) Visible() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(listing.Apply(c.pager, c.items))
}

func (c *Collection[T]) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Page() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pager.Page
}

func (c *Collection[T]) PageSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pager.Size
}

func (c *Collection[T]) PageCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return listing.PageCount(len(c.items), c.pager.Size)
}

// SetPage moves to page without checking it against the collection.
func (c *Collection[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager.SetPage(page)
}

// SetPageSize changes the window size and keeps the page index.
func (c *Collection[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager.SetSize(size)
}

func (c *Collection[T]) ResetPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager.Reset()
}

// deliverList applies a load result through scope. On failure the user sees
// failMsg and the collection keeps its previous contents.
func deliverList[T any](scope *view.Scope, deps *Deps, c *Collection[T], items []T, err error, failMsg string) error {
	if err != nil {
		reportFailure(scope, deps, failMsg, err)
		return err
	}
	scope.Deliver(func() { c.replace(items) })
	return nil
}

func reportFailure(scope *view.Scope, deps *Deps, msg string, err error) {
	if scope.Deliver(func() { deps.Notifier.ShowError(msg) }) {
		deps.logger().Warn(context.WithoutCancel(scope.Context()), msg, "error", err)
	}
}
