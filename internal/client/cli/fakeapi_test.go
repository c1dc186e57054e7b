package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/config"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/common"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type account struct {
	password string
	token    string
	user     models.User
}

// marketAPI is an in-process marketplace backend for App tests.
type marketAPI struct {
	mu sync.Mutex

	accounts   map[string]account
	auctions   []models.Auction
	products   []models.Product
	categories []models.Category
	subs       map[int64][]models.Category
	bids       map[int64][]models.Bid
	watched    map[int64]bool

	bidPosts  int
	lastBid   models.PlaceBidRequest
	lastQuery url.Values
}

func newMarketAPI(t *testing.T) (*marketAPI, *httptest.Server) {
	t.Helper()
	now := time.Now()
	reserve := 400.0

	api := &marketAPI{
		accounts: map[string]account{
			"alice": {password: "secret", token: "tok-alice", user: models.User{ID: 1, Username: "alice", FirstName: "Alice", Role: models.RoleUser}},
			"bob":   {password: "secret", token: "tok-bob", user: models.User{ID: 2, Username: "bob", Role: models.RoleSeller}},
		},
		auctions: []models.Auction{
			{ID: 1, Title: "Vintage Camera", Description: "<p>Works <b>great</b></p>", StartingPrice: 50, CurrentPrice: 100,
				ReservePrice: &reserve, StartDate: now.Add(-time.Hour), EndDate: now.Add(2 * time.Hour),
				Status: models.AuctionActive, SellerID: 2, SellerName: "bob", CategoryID: 1},
			{ID: 2, Title: "Oil Painting", CurrentPrice: 900, StartDate: now.Add(-time.Hour), EndDate: now.Add(26 * time.Hour),
				Status: models.AuctionActive, SellerID: 2, CategoryID: 2},
			{ID: 3, Title: "Old Clock", CurrentPrice: 40, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-time.Hour),
				Status: models.AuctionEnded, SellerID: 2, CategoryID: 2},
		},
		products: []models.Product{
			{ID: 10, Name: "Phone", Price: 299.99, Condition: models.ConditionNew, StockQuantity: 3, IsActive: true, SellerID: 2},
			{ID: 11, Name: "Lamp", Price: 20, Condition: models.ConditionUsed, StockQuantity: 40, IsActive: true, SellerID: 2},
		},
		categories: []models.Category{
			{ID: 1, Name: "Electronics", Description: "Phones and cameras"},
			{ID: 2, Name: "Art", Description: "Paintings"},
		},
		subs:    map[int64][]models.Category{1: {{ID: 5, Name: "Phones"}, {ID: 6, Name: "Cameras"}}},
		bids:    map[int64][]models.Bid{1: {{ID: 1, AuctionID: 1, Amount: 100, BidderName: "carol", Timestamp: now}}},
		watched: map[int64]bool{},
	}

	r := mux.NewRouter()

	user := func(req *http.Request) (models.User, bool) {
		tok := strings.TrimPrefix(req.Header.Get(common.AuthorizationHeaderName), "Bearer ")
		for _, acc := range api.accounts {
			if tok != "" && acc.token == tok {
				return acc.user, true
			}
		}
		return models.User{}, false
	}
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			if _, ok := user(req); !ok {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
				return
			}
			h(w, req)
		}
	}
	pathID := func(req *http.Request) int64 {
		id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
		return id
	}
	// decorate copies auctions and sets the watch flag for logged-in callers.
	decorate := func(req *http.Request, in []models.Auction) []models.Auction {
		_, ok := user(req)
		out := make([]models.Auction, len(in))
		copy(out, in)
		for i := range out {
			if ok {
				out[i].SetWatched(api.watched[out[i].ID])
			}
		}
		return out
	}
	list := func(h func(req *http.Request) any) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			api.mu.Lock()
			defer api.mu.Unlock()
			writeJSON(w, http.StatusOK, h(req))
		}
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var in models.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		acc, ok := api.accounts[in.Username]
		if !ok || acc.password != in.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, models.AuthResponse{User: acc.user, Token: acc.token})
	}).Methods(http.MethodPost)

	r.HandleFunc("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		var in models.RegisterRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		api.mu.Lock()
		defer api.mu.Unlock()
		if _, taken := api.accounts[in.Username]; taken {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "Username already taken"})
			return
		}
		acc := account{password: in.Password, token: "tok-" + in.Username, user: models.User{
			ID: int64(len(api.accounts) + 1), Username: in.Username, Email: in.Email, FirstName: in.FirstName, Role: models.RoleUser,
		}}
		api.accounts[in.Username] = acc
		writeJSON(w, http.StatusCreated, models.AuthResponse{User: acc.user, Token: acc.token})
	}).Methods(http.MethodPost)

	r.HandleFunc("/auctions", list(func(req *http.Request) any {
		api.lastQuery = req.URL.Query()
		var out []models.Auction
		for _, a := range api.auctions {
			if c := req.URL.Query().Get("categoryId"); c != "" && c != strconv.FormatInt(a.CategoryID, 10) {
				continue
			}
			if s := req.URL.Query().Get("search"); s != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(s)) {
				continue
			}
			out = append(out, a)
		}
		return decorate(req, out)
	})).Methods(http.MethodGet)

	for _, p := range []string{"/auctions/featured", "/auctions/ending-soon", "/auctions/popular"} {
		r.HandleFunc(p, list(func(req *http.Request) any {
			var out []models.Auction
			for _, a := range api.auctions {
				if a.Status == models.AuctionActive {
					out = append(out, a)
				}
			}
			return decorate(req, out)
		})).Methods(http.MethodGet)
	}

	r.HandleFunc("/auctions/watched", authed(list(func(req *http.Request) any {
		var out []models.Auction
		for _, a := range api.auctions {
			if api.watched[a.ID] {
				out = append(out, a)
			}
		}
		return decorate(req, out)
	}))).Methods(http.MethodGet)

	r.HandleFunc("/auctions/my-auctions", authed(list(func(req *http.Request) any {
		u, _ := user(req)
		var out []models.Auction
		for _, a := range api.auctions {
			if a.SellerID == u.ID {
				out = append(out, a)
			}
		}
		return decorate(req, out)
	}))).Methods(http.MethodGet)

	r.HandleFunc("/auctions/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		for _, a := range decorate(req, api.auctions) {
			if a.ID == pathID(req) {
				writeJSON(w, http.StatusOK, a)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Auction not found"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/auctions/{id:[0-9]+}/bids", list(func(req *http.Request) any {
		return api.bids[pathID(req)]
	})).Methods(http.MethodGet)

	r.HandleFunc("/auctions/{id:[0-9]+}/bids", authed(func(w http.ResponseWriter, req *http.Request) {
		var in models.PlaceBidRequest
		_ = json.NewDecoder(req.Body).Decode(&in)

		api.mu.Lock()
		defer api.mu.Unlock()
		api.bidPosts++
		api.lastBid = in
		u, _ := user(req)

		for i := range api.auctions {
			a := &api.auctions[i]
			if a.ID != pathID(req) {
				continue
			}
			if in.Amount <= a.CurrentPrice {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Bid must exceed current price"})
				return
			}
			a.CurrentPrice = in.Amount
			bid := models.Bid{ID: int64(len(api.bids[a.ID]) + 1), AuctionID: a.ID, BidderID: u.ID, BidderName: u.Username, Amount: in.Amount, Timestamp: time.Now()}
			api.bids[a.ID] = append([]models.Bid{bid}, api.bids[a.ID]...)
			writeJSON(w, http.StatusCreated, bid)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Auction not found"})
	})).Methods(http.MethodPost)

	r.HandleFunc("/auctions/{id:[0-9]+}/watch", authed(func(w http.ResponseWriter, req *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		api.watched[pathID(req)] = req.Method == http.MethodPost
		w.WriteHeader(http.StatusNoContent)
	})).Methods(http.MethodPost, http.MethodDelete)

	r.HandleFunc("/products", list(func(req *http.Request) any {
		api.lastQuery = req.URL.Query()
		return api.products
	})).Methods(http.MethodGet)
	r.HandleFunc("/products/featured", list(func(*http.Request) any { return api.products })).Methods(http.MethodGet)
	r.HandleFunc("/products/my-products", authed(list(func(*http.Request) any { return api.products }))).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		for _, p := range api.products {
			if p.ID == pathID(req) {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/categories", list(func(*http.Request) any { return api.categories })).Methods(http.MethodGet)
	r.HandleFunc("/categories/main", list(func(*http.Request) any { return api.categories })).Methods(http.MethodGet)
	r.HandleFunc("/categories/popular", list(func(*http.Request) any { return api.categories })).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id:[0-9]+}/subcategories", list(func(req *http.Request) any {
		return api.subs[pathID(req)]
	})).Methods(http.MethodGet)

	r.HandleFunc("/users/me/stats", authed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.DashboardStats{TotalBids: 24, WonAuctions: 8, TotalSpent: 1250, ActiveBids: 3, WatchlistCount: 9})
	})).Methods(http.MethodGet)
	r.HandleFunc("/users/me/seller-stats", authed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.SellerStats{TotalRevenue: 12500, TotalSales: 31, AverageRating: 4.6, Reviews: 17})
	})).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return api, srv
}

func (m *marketAPI) snapshot() (posts int, last models.PlaceBidRequest, query url.Values, watched map[int64]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := make(map[int64]bool, len(m.watched))
	for k, v := range m.watched {
		w[k] = v
	}
	return m.bidPosts, m.lastBid, m.lastQuery, w
}

// syncBuffer guards a bytes.Buffer shared with background goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func testConfig(srvURL, dbPath string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srvURL
	cfg.RequestTimeout = 5 * time.Second
	cfg.CountdownInterval = 50 * time.Millisecond
	cfg.PageSize = 2
	cfg.DatabasePath = dbPath
	cfg.HealthInterval = 0
	return cfg
}

// newTestApp builds a fully wired App against a fake marketplace and a
// temporary session database.
func newTestApp(t *testing.T) (*App, *marketAPI, *syncBuffer) {
	t.Helper()
	api, srv := newMarketAPI(t)
	app, out := openApp(t, srv.URL, filepath.Join(t.TempDir(), "session.db"))
	return app, api, out
}

func openApp(t *testing.T, srvURL, dbPath string) (*App, *syncBuffer) {
	t.Helper()
	silencePrintln(t)

	out := &syncBuffer{}
	ctx := context.Background()
	app, err := NewApp(ctx, testConfig(srvURL, dbPath), logging.Nop(), strings.NewReader(""), out)
	require.NoError(t, err)
	t.Cleanup(func() { app.shutdown(ctx) })
	return app, out
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// stubInputs answers text prompts from lines in order and every password
// prompt with password.
func stubInputs(t *testing.T, password string, lines ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
}

func login(t *testing.T, app *App, username string) {
	t.Helper()
	stubInputs(t, "secret", username)
	require.NoError(t, app.Login(context.Background()))
	app.settle(context.Background())
}
