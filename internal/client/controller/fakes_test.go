package controller

import (
	"bytes"
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/notify"
	"github.com/dmitrijs2005/auctionhub/internal/client/watchlist"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
)

type fakeSession struct {
	mu     sync.Mutex
	user   *models.User
	authed bool
}

func (s *fakeSession) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

func (s *fakeSession) IsSeller() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsSeller()
}

func (s *fakeSession) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func loggedIn(role models.Role) *fakeSession {
	return &fakeSession{authed: true, user: &models.User{ID: 1, Username: "alice", Role: role}}
}

type navCall struct {
	Path  string
	Query url.Values
}

type navRecorder struct {
	mu    sync.Mutex
	calls []navCall
}

func (n *navRecorder) Navigate(path string, q url.Values) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, navCall{Path: path, Query: q})
}

func (n *navRecorder) Calls() []navCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]navCall(nil), n.calls...)
}

// fakeAuctions implements services.AuctionService. Every method counts as
// one remote call.
type fakeAuctions struct {
	mu sync.Mutex

	Items      []models.Auction
	WatchedLst []models.Auction
	One        models.Auction
	BidsLst    []models.Bid
	Bid        models.Bid

	Err      error
	WatchErr error
	BidErr   error

	calls      int
	lastFilter listing.Filter
	lastBid    float64
}

func (f *fakeAuctions) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAuctions) list(items []models.Auction) ([]models.Auction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Auction(nil), items...), nil
}

func (f *fakeAuctions) List(_ context.Context, filter listing.Filter) ([]models.Auction, error) {
	f.mu.Lock()
	f.lastFilter = filter
	f.mu.Unlock()
	return f.list(f.Items)
}

func (f *fakeAuctions) Get(context.Context, int64) (models.Auction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.One, f.Err
}

func (f *fakeAuctions) Mine(context.Context) ([]models.Auction, error) { return f.list(f.Items) }
func (f *fakeAuctions) Watched(context.Context) ([]models.Auction, error) {
	return f.list(f.WatchedLst)
}
func (f *fakeAuctions) Featured(context.Context) ([]models.Auction, error)   { return f.list(f.Items) }
func (f *fakeAuctions) EndingSoon(context.Context) ([]models.Auction, error) { return f.list(f.Items) }
func (f *fakeAuctions) Popular(context.Context) ([]models.Auction, error)    { return f.list(f.Items) }

func (f *fakeAuctions) Bids(context.Context, int64) ([]models.Bid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.BidsLst, nil
}

func (f *fakeAuctions) PlaceBid(_ context.Context, _ int64, amount float64) (models.Bid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastBid = amount
	return f.Bid, f.BidErr
}

func (f *fakeAuctions) Watch(context.Context, int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.WatchErr
}

func (f *fakeAuctions) Unwatch(context.Context, int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.WatchErr
}

type fakeProducts struct {
	Items      []models.Product
	Err        error
	lastFilter listing.Filter
}

func (f *fakeProducts) List(_ context.Context, filter listing.Filter) ([]models.Product, error) {
	f.lastFilter = filter
	return f.Items, f.Err
}
func (f *fakeProducts) Get(context.Context, int64) (models.Product, error) {
	return models.Product{}, f.Err
}
func (f *fakeProducts) Mine(context.Context) ([]models.Product, error)     { return f.Items, f.Err }
func (f *fakeProducts) Featured(context.Context) ([]models.Product, error) { return f.Items, f.Err }
func (f *fakeProducts) NewArrivals(context.Context) ([]models.Product, error) {
	return f.Items, f.Err
}

type fakeCategories struct {
	MainLst []models.Category
	Subs    []models.Category
	Err     error
	SubErr  error
}

func (f *fakeCategories) All(context.Context) ([]models.Category, error) { return f.MainLst, f.Err }
func (f *fakeCategories) Get(context.Context, int64) (models.Category, error) {
	return models.Category{}, f.Err
}
func (f *fakeCategories) Main(context.Context) ([]models.Category, error) { return f.MainLst, f.Err }
func (f *fakeCategories) Subcategories(context.Context, int64) ([]models.Category, error) {
	return f.Subs, f.SubErr
}
func (f *fakeCategories) Popular(context.Context) ([]models.Category, error) {
	return f.MainLst, f.Err
}

type fakeStats struct {
	Dash      models.DashboardStats
	SellerRes models.SellerStats
	Err       error
}

func (f *fakeStats) Dashboard(context.Context) (models.DashboardStats, error) { return f.Dash, f.Err }
func (f *fakeStats) Seller(context.Context) (models.SellerStats, error)       { return f.SellerRes, f.Err }

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	deps       *Deps
	session    *fakeSession
	nav        *navRecorder
	notes      *notify.Recorder
	auctions   *fakeAuctions
	products   *fakeProducts
	categories *fakeCategories
	stats      *fakeStats
}

func newFixture(t *testing.T, session *fakeSession) *fixture {
	t.Helper()
	f := &fixture{
		session:    session,
		nav:        &navRecorder{},
		notes:      &notify.Recorder{},
		auctions:   &fakeAuctions{},
		products:   &fakeProducts{},
		categories: &fakeCategories{},
		stats:      &fakeStats{},
	}
	f.deps = &Deps{
		Session:           session,
		Auctions:          f.auctions,
		Products:          f.products,
		Categories:        f.categories,
		Stats:             f.stats,
		Watchlist:         watchlist.New(f.auctions, session, f.notes, logging.Nop()),
		Notifier:          f.notes,
		Nav:               f.nav,
		Log:               logging.Nop(),
		Clock:             func() time.Time { return testNow },
		CountdownInterval: time.Millisecond,
		PageSize:          10,
	}
	return f
}

func auctionN(n int, status models.AuctionStatus) []models.Auction {
	out := make([]models.Auction, n)
	for i := range out {
		out[i] = models.Auction{
			ID:        int64(i + 1),
			Status:    status,
			StartDate: testNow.Add(-time.Hour),
			EndDate:   testNow.Add(time.Duration(i+1) * time.Hour),
		}
	}
	return out
}

func lastNote(t *testing.T, r *notify.Recorder) notify.Message {
	t.Helper()
	m, ok := r.Last()
	if !ok {
		t.Fatal("no notification recorded")
	}
	return m
}

// logBuffer collects debug log output shared with card goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLog(f *fixture) *logBuffer {
	b := &logBuffer{}
	f.deps.Log = logging.New(b, "debug")
	return b
}
