package cli

import (
	"context"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

// maxRedirects bounds how many queued navigations one command may trigger.
const maxRedirects = 4

// screen is the page currently shown. Exactly one of the page fields is set,
// except for product detail which only keeps the loaded product.
type screen struct {
	path  string
	query url.Values

	home       *controller.HomePage
	auctions   *controller.AuctionPage
	detail     *controller.AuctionDetailPage
	products   *controller.ProductPage
	product    *models.Product
	categories *controller.CategoryPage
	seller     *controller.SellerPage
	dashboard  *controller.DashboardPage
}

func (s *screen) Close() {
	switch {
	case s.home != nil:
		s.home.Close()
	case s.auctions != nil:
		s.auctions.Close()
	case s.detail != nil:
		s.detail.Close()
	case s.products != nil:
		s.products.Close()
	case s.categories != nil:
		s.categories.Close()
	case s.seller != nil:
		s.seller.Close()
	case s.dashboard != nil:
		s.dashboard.Close()
	}
}

// Navigate implements controller.Navigator. The request is queued and
// applied by settle once the running command returns.
func (a *App) Navigate(path string, query url.Values) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = append(a.pending, navigation{path: path, query: query})
}

// reopen queues the current screen again, or home when there is none.
func (a *App) reopen() {
	if a.current == nil {
		a.Navigate(controller.PathHome, nil)
		return
	}
	a.Navigate(a.current.path, a.current.query)
}

func (a *App) takePending() (navigation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pending) == 0 {
		return navigation{}, false
	}
	last := a.pending[len(a.pending)-1]
	a.pending = nil
	return last, true
}

// settle applies queued navigation. When several requests were queued by
// one command the last one wins. Pages that redirect while opening are
// followed up to maxRedirects times.
func (a *App) settle(ctx context.Context) {
	for i := 0; i < maxRedirects; i++ {
		nav, ok := a.takePending()
		if !ok {
			return
		}
		a.open(ctx, nav.path, nav.query)
	}
	a.log.Warn(ctx, "navigation loop stopped", "limit", maxRedirects)
}

func (a *App) closeScreen() {
	if a.current != nil {
		a.current.Close()
		a.current = nil
	}
}

func (a *App) replaceScreen(s *screen) {
	a.closeScreen()
	a.current = s
}

// open shows the screen for path. Login and messages are not screens: they
// print a hint and keep the current screen.
func (a *App) open(ctx context.Context, path string, query url.Values) {
	a.log.Debug(ctx, "navigate", "path", path, "query", query.Encode())

	switch path {
	case controller.PathLogin:
		a.say("Please log in first: type 'login' (or 'register' to create an account).")
		return
	case controller.PathMessages:
		a.say("Messaging is not available in the terminal client (seller #" + query.Get("recipient") + ").")
		return
	}

	s := &screen{path: path, query: query}

	switch {
	case path == controller.PathHome:
		s.home = controller.NewHomePage(ctx, a.deps)
		a.replaceScreen(s)
		_ = s.home.Load()
		a.showHome(s.home)

	case path == controller.PathAuctions:
		s.auctions = controller.NewAuctionPage(ctx, a.deps)
		a.replaceScreen(s)
		_ = s.auctions.Open(controller.AuctionParams{
			CategoryID: firstOf(query, "category", "categoryId"),
			SellerID:   firstOf(query, "seller", "sellerId"),
			Watched:    query.Get("watched") == "true",
		})
		a.showAuctions(s.auctions)

	case strings.HasPrefix(path, controller.PathAuctions+"/"):
		id, err := ParseID(strings.TrimPrefix(path, controller.PathAuctions+"/"))
		if err != nil {
			a.say(err.Error())
			return
		}
		s.detail = controller.NewAuctionDetailPage(ctx, a.deps, controller.CardHooks{})
		a.replaceScreen(s)
		if s.detail.Load(id) == nil {
			a.showAuction(s.detail)
		}

	case path == controller.PathProducts:
		s.products = controller.NewProductPage(ctx, a.deps)
		a.replaceScreen(s)
		_ = s.products.Open(controller.ProductParams{
			CategoryID: firstOf(query, "category", "categoryId"),
			SellerID:   firstOf(query, "seller", "sellerId"),
		})
		a.showProducts(s.products)

	case strings.HasPrefix(path, controller.PathProducts+"/"):
		id, err := ParseID(strings.TrimPrefix(path, controller.PathProducts+"/"))
		if err != nil {
			a.say(err.Error())
			return
		}
		p, err := a.deps.Products.Get(ctx, id)
		if err != nil {
			a.log.Warn(ctx, "product unavailable", "product_id", id, "error", err)
			a.deps.Notifier.ShowError(controller.MsgLoadProducts)
			return
		}
		s.product = &p
		a.replaceScreen(s)
		a.showProduct(p)

	case path == controller.PathCategories:
		s.categories = controller.NewCategoryPage(ctx, a.deps)
		a.replaceScreen(s)
		_ = s.categories.Load()
		a.showCategories(s.categories)

	case strings.HasPrefix(path, controller.PathCategories+"/"):
		id, err := ParseID(strings.TrimPrefix(path, controller.PathCategories+"/"))
		if err != nil {
			a.say(err.Error())
			return
		}
		s.categories = controller.NewCategoryPage(ctx, a.deps)
		a.replaceScreen(s)
		_ = s.categories.Load()
		_ = s.categories.Open(id)
		a.showCategories(s.categories)

	case path == controller.PathSeller:
		s.seller = controller.NewSellerPage(ctx, a.deps)
		if !s.seller.Open().Allowed() {
			s.Close()
			return
		}
		a.replaceScreen(s)
		a.showSeller(s.seller)

	case path == controller.PathDashboard:
		s.dashboard = controller.NewDashboardPage(ctx, a.deps)
		if !s.dashboard.Open() {
			s.Close()
			return
		}
		a.replaceScreen(s)
		a.showDashboard(s.dashboard)

	default:
		a.say("Unknown location:", path)
	}
}

func firstOf(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}
