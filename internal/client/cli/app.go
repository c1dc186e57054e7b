package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/config"
	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
	"github.com/dmitrijs2005/auctionhub/internal/client/notify"
	"github.com/dmitrijs2005/auctionhub/internal/client/services"
	"github.com/dmitrijs2005/auctionhub/internal/client/session"
	"github.com/dmitrijs2005/auctionhub/internal/client/watchlist"
	"github.com/dmitrijs2005/auctionhub/internal/filex"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type navigation struct {
	path  string
	query url.Values
}

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session controller.SessionReader
	auth    services.AuthService
	deps    *controller.Deps
	reader  *bufio.Reader
	out     io.Writer

	mu      sync.Mutex
	mode    Mode
	pending []navigation

	// current is only touched by the REPL goroutine.
	current *screen
}

// NewApp opens the local database, restores the persisted session and
// builds the API client, services and page dependencies.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		log.Error(ctx, "error preparing database directory", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.New(session.NewSQLStore(db), log.With("component", "session"))
	if err := sess.Hydrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sess, log.With("component", "api"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	notifier := notify.NewPrinter(out, log)
	auctions := services.NewAuctionService(apiClient)

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		session: sess,
		auth:    services.NewAuthService(apiClient, sess, log),
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.deps = &controller.Deps{
		Session:           sess,
		Auctions:          auctions,
		Products:          services.NewProductService(apiClient),
		Categories:        services.NewCategoryService(apiClient),
		Stats:             services.NewStatsService(apiClient),
		Watchlist:         watchlist.New(auctions, sess, notifier, log),
		Notifier:          notifier,
		Nav:               a,
		Log:               log.With("component", "pages"),
		Clock:             time.Now,
		CountdownInterval: c.CountdownInterval,
		PageSize:          c.PageSize,
	}
	return a, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Run blocks in the REPL and releases every resource when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.shutdown(ctx)
	a.Root(ctx)
}

func (a *App) shutdown(ctx context.Context) {
	a.closeScreen()
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// StartOnlineStatusWatcher pings the API every interval and flips the
// prompt between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
