package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
	"github.com/dmitrijs2005/auctionhub/internal/client/lifecycle"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/render"
)

const (
	titleWidth       = 32
	descriptionWidth = 48
	timeLayout       = "2006-01-02 15:04"
)

func (a *App) say(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) sayf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func (a *App) heading(title string) {
	a.sayf("== %s ==", title)
}

// pager is the paging surface shared by every collection page.
type pager interface {
	Page() int
	PageCount() int
	Total() int
}

func (a *App) footer(p pager, noun string) {
	pages := max(p.PageCount(), 1)
	a.sayf("Page %d of %d (%d %s)", p.Page()+1, pages, p.Total(), noun)
}

func (a *App) cardLines(cards []*controller.AuctionCard) {
	if len(cards) == 0 {
		a.say("  (none)")
		return
	}
	for _, c := range cards {
		auction := c.Auction()
		mark := ""
		if c.Watched() {
			mark = " [watched]"
		}
		a.sayf("  #%-5d %-*s %14s  %-9s %s%s",
			auction.ID, titleWidth, render.Truncate(auction.Title, titleWidth),
			render.Price(auction.CurrentPrice), c.StatusBadge().Label, c.TimeLeft(), mark)
	}
}

func (a *App) productLines(products []models.Product) {
	if len(products) == 0 {
		a.say("  (none)")
		return
	}
	for _, p := range products {
		a.sayf("  #%-5d %-*s %14s  %-11s %s",
			p.ID, titleWidth, render.Truncate(p.Name, titleWidth),
			render.Price(p.Price), lifecycle.ClassifyCondition(p.Condition).Label, lifecycle.StockStatus(p).Label)
	}
}

func (a *App) categoryLines(categories []models.Category) {
	if len(categories) == 0 {
		a.say("  (none)")
		return
	}
	for _, c := range categories {
		desc := render.Truncate(render.PlainText(c.Description), descriptionWidth)
		if c.AuctionCount > 0 {
			a.sayf("  #%-5d %s (%d auctions) %s", c.ID, c.Name, c.AuctionCount, desc)
			continue
		}
		a.sayf("  #%-5d %s %s", c.ID, c.Name, desc)
	}
}

func (a *App) showHome(p *controller.HomePage) {
	a.heading("Home")
	a.say("Featured auctions")
	a.cardLines(p.FeaturedCards())
	a.say("Ending soon")
	a.cardLines(p.EndingSoonCards())
	a.say("Popular categories")
	a.categoryLines(p.PopularCategories())
}

func (a *App) showAuctions(p *controller.AuctionPage) {
	title := "Auctions"
	if p.WatchedMode() {
		title = "Watched auctions"
	}
	a.heading(title)

	if f := p.Filter(); len(f) > 0 {
		parts := make([]string, 0, len(f))
		for _, k := range f.Keys() {
			parts = append(parts, k+"="+f[k])
		}
		a.say("Filters:", strings.Join(parts, " "))
	}
	a.cardLines(p.Cards())
	a.footer(p, "auctions")
}

func (a *App) showAuction(p *controller.AuctionDetailPage) {
	card := p.Card()
	if card == nil {
		return
	}
	auction := card.Auction()

	a.heading(auction.Title)
	a.sayf("Status:        %s", card.StatusBadge().Label)
	a.sayf("Time left:     %s", card.TimeLeft())
	a.sayf("Current price: %s", render.Price(auction.CurrentPrice))
	a.sayf("Starting at:   %s", render.Price(auction.StartingPrice))
	if auction.ReservePrice != nil {
		a.sayf("Reserve:       %s (%s reached)", render.Price(*auction.ReservePrice), render.Percent(card.ReserveProgress()))
	}
	if auction.SellerName != "" {
		a.sayf("Seller:        %s (#%d)", auction.SellerName, auction.SellerID)
	}
	if auction.CategoryName != "" {
		a.sayf("Category:      %s", auction.CategoryName)
	}
	if card.Watched() {
		a.say("You are watching this auction.")
	}
	if desc := render.PlainText(auction.Description); desc != "" {
		a.say()
		a.say(desc)
	}

	bids := p.Bids()
	a.say()
	a.sayf("Bids (%d)", len(bids))
	for _, b := range bids {
		a.sayf("  %14s  %-16s %s", render.Price(b.Amount), b.BidderName, b.Timestamp.Local().Format(timeLayout))
	}
}

func (a *App) showProducts(p *controller.ProductPage) {
	a.heading("Products")
	if f := p.Filter(); len(f) > 0 {
		parts := make([]string, 0, len(f))
		for _, k := range f.Keys() {
			parts = append(parts, k+"="+f[k])
		}
		a.say("Filters:", strings.Join(parts, " "))
	}
	a.productLines(p.Visible())
	a.footer(p, "products")
}

func (a *App) showProduct(p models.Product) {
	a.heading(p.Name)
	a.sayf("Price:      %s", render.Price(p.Price))
	a.sayf("Condition:  %s", lifecycle.ClassifyCondition(p.Condition).Label)
	a.sayf("Stock:      %s (%d)", lifecycle.StockStatus(p).Label, p.StockQuantity)
	if p.Brand != "" {
		a.sayf("Brand:      %s %s", p.Brand, p.Model)
	}
	if p.SellerName != "" {
		a.sayf("Seller:     %s (#%d)", p.SellerName, p.SellerID)
	}
	if desc := render.PlainText(p.Description); desc != "" {
		a.say()
		a.say(desc)
	}
}

func (a *App) showCategories(p *controller.CategoryPage) {
	if id := p.Selected(); id != 0 {
		a.heading(fmt.Sprintf("Subcategories of #%d", id))
	} else {
		a.heading("Categories")
	}
	a.categoryLines(p.Visible())
	a.footer(p, "categories")
}

func (a *App) showSeller(p *controller.SellerPage) {
	st := p.Stats()
	a.heading("Seller area")
	a.sayf("Revenue:        %s", render.Price(st.TotalRevenue))
	a.sayf("Sales:          %d", st.TotalSales)
	a.sayf("Rating:         %s %.1f (%d reviews)", render.Stars(lifecycle.RatingStars(st.AverageRating)), st.AverageRating, st.Reviews)
	a.sayf("Active auctions: %d of %d", p.ActiveAuctions(), p.Auctions.Total())
	a.say("My auctions")
	a.cardLines(p.Cards())
	a.footer(&p.Auctions, "auctions")
	a.say("My products")
	a.productLines(p.Products.Visible())
}

func (a *App) showDashboard(p *controller.DashboardPage) {
	sum := p.Summary()
	a.heading("Dashboard")
	if u := a.session.CurrentUser(); u != nil {
		a.sayf("Signed in as %s", u.Username)
	}
	a.sayf("Bids placed:    %d (%d active)", sum.Stats.TotalBids, sum.Stats.ActiveBids)
	a.sayf("Auctions won:   %d", sum.Stats.WonAuctions)
	a.sayf("Success rate:   %s", render.Percent(sum.SuccessRate))
	a.sayf("Average bid:    %s", render.Price(sum.AverageBid))
	a.sayf("Total spent:    %s", render.Price(sum.Stats.TotalSpent))
	a.sayf("Watching:       %d", sum.WatchlistCount)
	a.say("Watched auctions")
	a.cardLines(p.Cards())
	a.say("Recommended products")
	a.productLines(p.Recommended())
}

// show renders the current screen again without reloading it.
func (a *App) show() {
	s := a.current
	switch {
	case s == nil:
		a.say("Nothing to show. Type 'home' to start.")
	case s.home != nil:
		a.showHome(s.home)
	case s.auctions != nil:
		a.showAuctions(s.auctions)
	case s.detail != nil:
		a.showAuction(s.detail)
	case s.products != nil:
		a.showProducts(s.products)
	case s.product != nil:
		a.showProduct(*s.product)
	case s.categories != nil:
		a.showCategories(s.categories)
	case s.seller != nil:
		a.showSeller(s.seller)
	case s.dashboard != nil:
		a.showDashboard(s.dashboard)
	}
}
