package cli

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/render"
	"github.com/dmitrijs2005/auctionhub/internal/client/watchlist"
)

var (
	ErrUsage      = errors.New("wrong arguments")
	ErrNotOnPage  = errors.New("not on the current screen")
	ErrWrongPage  = errors.New("command not available on this screen")
	ErrBadPageArg = errors.New("page must be a number, next or prev")
)

func (a *App) usage(text string) error {
	a.say("Usage:", text)
	return ErrUsage
}

func (a *App) Home(context.Context) error {
	a.Navigate(controller.PathHome, nil)
	return nil
}

// browseQuery reads "watched", "category=ID" and "seller=ID" arguments.
func browseQuery(args []string) url.Values {
	pairs, rest := ParsePairs(args)
	q := url.Values{}
	for _, k := range []string{"category", "seller"} {
		if v := pairs[k]; v != "" {
			q.Set(k, v)
		}
	}
	for _, r := range rest {
		if r == "watched" {
			q.Set("watched", "true")
		}
	}
	return q
}

// Auctions opens the auction list: auctions [watched] [category=ID] [seller=ID].
func (a *App) Auctions(_ context.Context, args []string) error {
	a.Navigate(controller.PathAuctions, browseQuery(args))
	return nil
}

// Auction opens one auction with its bid history.
func (a *App) Auction(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("auction <id>")
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}
	a.Navigate(controller.AuctionPath(id), nil)
	return nil
}

// Products opens the product list: products [category=ID] [seller=ID].
func (a *App) Products(_ context.Context, args []string) error {
	q := browseQuery(args)
	q.Del("watched")
	a.Navigate(controller.PathProducts, q)
	return nil
}

func (a *App) Product(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("product <id>")
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}
	a.Navigate(controller.ProductPath(id), nil)
	return nil
}

// Categories opens the main categories, or the subcategories of an id.
func (a *App) Categories(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.Navigate(controller.PathCategories, nil)
		return nil
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}
	a.Navigate(controller.CategoryPath(id), nil)
	return nil
}

func (a *App) Seller(context.Context) error {
	a.Navigate(controller.PathSeller, nil)
	return nil
}

func (a *App) Dashboard(context.Context) error {
	a.Navigate(controller.PathDashboard, nil)
	return nil
}

// Filter applies key=value filters on the auctions or products screen.
// "search" is accepted as a short name for the search term; a value of 0,
// false or nothing drops the constraint.
func (a *App) Filter(_ context.Context, args []string) error {
	pairs, _ := ParsePairs(args)
	if v, ok := pairs["search"]; ok {
		pairs[listing.FieldSearchTerm] = v
		delete(pairs, "search")
	}

	s := a.current
	switch {
	case s != nil && s.auctions != nil:
		if err := s.auctions.ApplyFilters(pairs); err != nil {
			return err
		}
		a.showAuctions(s.auctions)
	case s != nil && s.products != nil:
		if err := s.products.ApplyFilters(pairs); err != nil {
			return err
		}
		a.showProducts(s.products)
	default:
		a.say("Filters work on the auctions and products screens.")
		return ErrWrongPage
	}
	return nil
}

// Clear drops every filter on the auctions or products screen.
func (a *App) Clear(context.Context) error {
	s := a.current
	switch {
	case s != nil && s.auctions != nil:
		if err := s.auctions.ClearFilters(); err != nil {
			return err
		}
		a.showAuctions(s.auctions)
	case s != nil && s.products != nil:
		if err := s.products.ClearFilters(); err != nil {
			return err
		}
		a.showProducts(s.products)
	default:
		a.say("Filters work on the auctions and products screens.")
		return ErrWrongPage
	}
	return nil
}

// Watched switches the auctions screen to the watch list.
func (a *App) Watched(context.Context) error {
	if s := a.current; s != nil && s.auctions != nil {
		if err := s.auctions.ShowWatched(); err != nil {
			return err
		}
		a.showAuctions(s.auctions)
		return nil
	}
	a.Navigate(controller.PathAuctions, url.Values{"watched": {"true"}})
	return nil
}

// pageable is the paging surface of the collection pages.
type pageable interface {
	pager
	SetPage(page int)
}

func (a *App) pageable() pageable {
	s := a.current
	switch {
	case s == nil:
		return nil
	case s.auctions != nil:
		return s.auctions
	case s.products != nil:
		return s.products
	case s.categories != nil:
		return s.categories
	case s.seller != nil:
		return &s.seller.Auctions
	}
	return nil
}

// Page moves the current list to a 1-based page number, or to the next or
// previous page. The number is not checked against the page count.
func (a *App) Page(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("page <n|next|prev>")
	}
	p := a.pageable()
	if p == nil {
		a.say("This screen has no pages.")
		return ErrWrongPage
	}

	switch args[0] {
	case "next":
		p.SetPage(p.Page() + 1)
	case "prev":
		if p.Page() > 0 {
			p.SetPage(p.Page() - 1)
		}
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			a.say(ErrBadPageArg.Error())
			return ErrBadPageArg
		}
		p.SetPage(n - 1)
	}
	a.show()
	return nil
}

// Search narrows the categories screen to names or descriptions containing
// the given words.
func (a *App) Search(_ context.Context, args []string) error {
	s := a.current
	if s == nil || s.categories == nil {
		a.say("Search works on the categories screen; use 'filter search=...' for auctions and products.")
		return ErrWrongPage
	}
	s.categories.Search(strings.Join(args, " "))
	a.showCategories(s.categories)
	return nil
}

func (a *App) Back(context.Context) error {
	s := a.current
	if s == nil || s.categories == nil {
		a.say("Back works on the categories screen.")
		return ErrWrongPage
	}
	s.categories.Back()
	a.showCategories(s.categories)
	return nil
}

func (a *App) findCard(id int64) *controller.AuctionCard {
	s := a.current
	if s == nil {
		return nil
	}

	var cards []*controller.AuctionCard
	switch {
	case s.home != nil:
		cards = append(s.home.FeaturedCards(), s.home.EndingSoonCards()...)
	case s.auctions != nil:
		cards = s.auctions.Cards()
	case s.detail != nil:
		if c := s.detail.Card(); c != nil {
			cards = []*controller.AuctionCard{c}
		}
	case s.seller != nil:
		cards = s.seller.Cards()
	case s.dashboard != nil:
		cards = s.dashboard.Cards()
	}

	for _, c := range cards {
		if c.Auction().ID == id {
			return c
		}
	}
	return nil
}

// Watch toggles the watch flag of an auction shown on the current screen.
func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("watch <auction id>")
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}

	card := a.findCard(id)
	if card == nil {
		a.sayf("Auction #%d is not on screen.", id)
		return ErrNotOnPage
	}

	err = card.OnWatchClick()
	if errors.Is(err, watchlist.ErrTogglePending) {
		a.sayf("Still updating auction #%d, try again in a moment.", id)
	}
	return err
}

// Bid places a bid on an auction: bid <id> [amount]. The auction screen is
// opened first; the amount is asked for when it is not given.
func (a *App) Bid(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return a.usage("bid <auction id> [amount]")
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}

	if s := a.current; s == nil || s.detail == nil || s.detail.Card() == nil || s.detail.Card().Auction().ID != id {
		a.open(ctx, controller.AuctionPath(id), nil)
	}
	s := a.current
	if s == nil || s.detail == nil || s.detail.Card() == nil {
		return controller.ErrNoAuction
	}
	card := s.detail.Card()

	if d := card.OnBidClick(); !d.Allowed() {
		a.log.Debug(ctx, "bid refused", "auction_id", id, "reason", d.Reason)
		return nil
	}

	raw := ""
	if len(args) == 2 {
		raw = args[1]
	} else {
		prompt := "Enter bid amount (current price " + render.Price(card.Auction().CurrentPrice) + ")"
		raw, err = getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		a.say(err.Error())
		return err
	}

	if _, err := s.detail.PlaceBid(amount); err != nil {
		return err
	}
	a.showAuction(s.detail)
	return nil
}

func (a *App) findProduct(id int64) (models.Product, bool) {
	s := a.current
	if s == nil {
		return models.Product{}, false
	}

	var products []models.Product
	switch {
	case s.products != nil:
		products = s.products.All()
	case s.product != nil:
		products = []models.Product{*s.product}
	case s.seller != nil:
		products = s.seller.Products.All()
	case s.dashboard != nil:
		products = s.dashboard.Recommended()
	}

	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Cart adds a product shown on the current screen to the cart.
func (a *App) Cart(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("cart <product id>")
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}
	p, ok := a.findProduct(id)
	if !ok {
		a.sayf("Product #%d is not on screen.", id)
		return ErrNotOnPage
	}
	controller.AddToCart(a.deps, p)
	return nil
}

// Contact starts a conversation with a seller.
func (a *App) Contact(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("contact <seller id>")
	}
	id, err := ParseID(args[0])
	if err != nil {
		a.say(err.Error())
		return err
	}
	controller.ContactSeller(a.deps, id)
	return nil
}

// Start is the home screen's call to action.
func (a *App) Start(context.Context) error {
	controller.GetStarted(a.deps)
	return nil
}

// Refresh reloads the current screen.
func (a *App) Refresh(context.Context) error {
	a.reopen()
	return nil
}
