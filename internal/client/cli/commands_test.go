package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestBid_AnonymousNeverReachesServer(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Bid(ctx, []string{"1", "150"}))
	app.settle(ctx)

	posts, _, _, _ := api.snapshot()
	assert.Zero(t, posts)
	assert.Contains(t, out.String(), "[error] "+controller.MsgLoginToBid)
	assert.Contains(t, out.String(), "Please log in first")
	require.NotNil(t, app.current)
	assert.NotNil(t, app.current.detail, "auction stays on screen")
}

func TestBid_LoggedIn(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()
	login(t, app, "alice")
	assert.Contains(t, out.String(), "Logged in as Alice")

	require.NoError(t, app.Bid(ctx, []string{"1", "$150"}))
	posts, last, _, _ := api.snapshot()
	assert.Equal(t, 1, posts)
	assert.Equal(t, int64(1), last.AuctionID)
	assert.Equal(t, 150.0, last.Amount)
	assert.Contains(t, out.String(), "[ok] "+controller.MsgBidPlaced)
	assert.Contains(t, out.String(), "Current price: $150.00")

	out.Reset()
	require.Error(t, app.Bid(ctx, []string{"1", "10"}))
	assert.Contains(t, out.String(), "[error] Bid must exceed current price")

	stubInputs(t, "", "200")
	require.NoError(t, app.Bid(ctx, []string{"1"}))
	_, last, _, _ = api.snapshot()
	assert.Equal(t, 200.0, last.Amount)

	out.Reset()
	require.Error(t, app.Bid(ctx, []string{"1", "lots"}))
	assert.Contains(t, out.String(), `invalid amount "lots"`)
}

func TestBid_EndedAuction(t *testing.T) {
	app, api, out := newTestApp(t)
	login(t, app, "alice")

	require.NoError(t, app.Bid(context.Background(), []string{"3", "500"}))
	posts, _, _, _ := api.snapshot()
	assert.Zero(t, posts)
	assert.Contains(t, out.String(), "[warn] "+controller.MsgAuctionNotActive)
}

func TestBid_Usage(t *testing.T) {
	app, _, out := newTestApp(t)
	assert.ErrorIs(t, app.Bid(context.Background(), nil), ErrUsage)
	assert.Contains(t, out.String(), "Usage: bid <auction id> [amount]")
	assert.Error(t, app.Bid(context.Background(), []string{"abc"}))
}

func TestAuctionDetail(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Auction(ctx, []string{"1"}))
	app.settle(ctx)

	got := out.String()
	assert.Contains(t, got, "== Vintage Camera ==")
	assert.Contains(t, got, "Status:        Active")
	assert.Contains(t, got, "Reserve:       $400.00 (25.0% reached)")
	assert.Contains(t, got, "Works great")
	assert.Contains(t, got, "Bids (1)")

	out.Reset()
	require.NoError(t, app.Auction(ctx, []string{"99"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "[error] "+controller.MsgLoadAuction)
}

func TestWatch_FromAuctionList(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Auctions(ctx, nil))
	app.settle(ctx)
	require.NoError(t, app.Watch(ctx, []string{"1"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "[error] "+controller.MsgLoginToWatch)

	login(t, app, "alice")
	require.NoError(t, app.Auctions(ctx, nil))
	app.settle(ctx)

	require.NoError(t, app.Watch(ctx, []string{"1"}))
	_, _, _, watched := api.snapshot()
	assert.True(t, watched[1])
	assert.Contains(t, out.String(), "[ok] Added to watchlist")

	out.Reset()
	app.show()
	assert.Contains(t, out.String(), "[watched]")

	assert.ErrorIs(t, app.Watch(ctx, []string{"3"}), ErrNotOnPage, "third auction is on page two")

	require.NoError(t, app.Watched(ctx))
	assert.Contains(t, out.String(), "== Watched auctions ==")
	assert.Equal(t, 1, app.current.auctions.Total())
}

func TestFilterAndPaging(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, app.Filter(ctx, []string{"search=x"}), ErrWrongPage)

	require.NoError(t, app.Auctions(ctx, []string{"category=2"}))
	app.settle(ctx)
	_, _, q, _ := api.snapshot()
	assert.Equal(t, "2", q.Get("categoryId"))
	assert.Equal(t, 2, app.current.auctions.Total())

	require.NoError(t, app.Filter(ctx, []string{"search=camera", "minPrice=0"}))
	_, _, q, _ = api.snapshot()
	assert.Equal(t, "camera", q.Get("search"))
	assert.False(t, q.Has("minPrice"))
	assert.False(t, q.Has("categoryId"))
	assert.Contains(t, out.String(), "Filters: searchTerm=camera")

	require.NoError(t, app.Clear(ctx))
	assert.Equal(t, 3, app.current.auctions.Total())

	out.Reset()
	require.NoError(t, app.Page(ctx, []string{"2"}))
	assert.Contains(t, out.String(), "Page 2 of 2 (3 auctions)")
	assert.Contains(t, out.String(), "Old Clock")

	out.Reset()
	require.NoError(t, app.Page(ctx, []string{"next"}))
	assert.Contains(t, out.String(), "Page 3 of 2 (3 auctions)")
	assert.Contains(t, out.String(), "(none)")

	require.NoError(t, app.Page(ctx, []string{"prev"}))
	assert.Equal(t, 1, app.current.auctions.Page())

	out.Reset()
	require.NoError(t, app.Page(ctx, []string{"1537228672809129302"}))
	assert.Contains(t, out.String(), "(none)", "a page far past the end is empty")

	assert.ErrorIs(t, app.Page(ctx, []string{"x"}), ErrBadPageArg)
	assert.ErrorIs(t, app.Page(ctx, nil), ErrUsage)

	require.NoError(t, app.Filter(ctx, []string{"search=painting"}))
	assert.Equal(t, 0, app.current.auctions.Page(), "new filter starts at the first page")
}

func TestProducts(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Products(ctx, []string{"category=1", "watched"}))
	app.settle(ctx)
	_, _, q, _ := api.snapshot()
	assert.Equal(t, "1", q.Get("categoryId"))
	assert.Contains(t, out.String(), "== Products ==")
	assert.Contains(t, out.String(), "Low Stock")

	require.NoError(t, app.Filter(ctx, []string{"brand=Acme", "condition="}))
	_, _, q, _ = api.snapshot()
	assert.Equal(t, "Acme", q.Get("brand"))
	assert.False(t, q.Has("condition"))

	require.NoError(t, app.Cart(ctx, []string{"10"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "Please log in first")
	assert.NotContains(t, out.String(), controller.MsgAddedToCart)

	login(t, app, "alice")
	require.NoError(t, app.Cart(ctx, []string{"10"}))
	assert.Contains(t, out.String(), "[ok] "+controller.MsgAddedToCart)
	assert.ErrorIs(t, app.Cart(ctx, []string{"99"}), ErrNotOnPage)

	out.Reset()
	require.NoError(t, app.Product(ctx, []string{"11"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "== Lamp ==")
	assert.Contains(t, out.String(), "Condition:  Used")
	require.NoError(t, app.Cart(ctx, []string{"11"}))
}

func TestCategories(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, app.Search(ctx, []string{"x"}), ErrWrongPage)
	assert.ErrorIs(t, app.Back(ctx), ErrWrongPage)

	require.NoError(t, app.Categories(ctx, nil))
	app.settle(ctx)
	assert.Contains(t, out.String(), "== Categories ==")
	assert.Equal(t, 2, app.current.categories.Total())

	out.Reset()
	require.NoError(t, app.Search(ctx, []string{"PAINT"}))
	assert.Contains(t, out.String(), "Art")
	assert.NotContains(t, out.String(), "Electronics")
	assert.Contains(t, out.String(), "Page 1 of 1 (1 categories)")

	out.Reset()
	require.NoError(t, app.Categories(ctx, []string{"1"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "== Subcategories of #1 ==")
	assert.Contains(t, out.String(), "Cameras")

	out.Reset()
	require.NoError(t, app.Back(ctx))
	assert.Contains(t, out.String(), "== Categories ==")
	assert.Equal(t, 2, app.current.categories.Total())
}

func TestSellerArea(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Seller(ctx))
	app.settle(ctx)
	assert.Contains(t, out.String(), "Please log in first")

	login(t, app, "alice")
	out.Reset()
	require.NoError(t, app.Seller(ctx))
	app.settle(ctx)
	assert.Contains(t, out.String(), "[error] "+controller.MsgSellerOnly)
	assert.Contains(t, out.String(), "== Home ==")
	assert.NotNil(t, app.current.home)

	seller, _, sellerOut := newTestApp(t)
	login(t, seller, "bob")
	require.NoError(t, seller.Seller(ctx))
	seller.settle(ctx)

	got := sellerOut.String()
	assert.Contains(t, got, "== Seller area ==")
	assert.Contains(t, got, "Revenue:        $12,500.00")
	assert.Contains(t, got, "Active auctions: 2 of 3")
	assert.Contains(t, got, "****. 4.6 (17 reviews)")

	require.NoError(t, seller.Cart(ctx, []string{"11"}))
	assert.Contains(t, sellerOut.String(), controller.MsgAddedToCart)
}

func TestDashboard(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Dashboard(ctx))
	app.settle(ctx)
	assert.Contains(t, out.String(), "Please log in first")
	assert.NotContains(t, out.String(), "== Dashboard ==")

	login(t, app, "alice")
	require.NoError(t, app.Dashboard(ctx))
	app.settle(ctx)

	got := out.String()
	assert.Contains(t, got, "== Dashboard ==")
	assert.Contains(t, got, "Signed in as alice")
	assert.Contains(t, got, "Success rate:   33.3%")
	assert.Contains(t, got, "Average bid:    $52.08")
	assert.Contains(t, got, "Watching:       0")
}

func TestContactAndStart(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Contact(ctx, []string{"2"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "Please log in first")

	require.NoError(t, app.Start(ctx))
	app.settle(ctx)

	login(t, app, "alice")
	require.NoError(t, app.Contact(ctx, []string{"2"}))
	app.settle(ctx)
	assert.Contains(t, out.String(), "Messaging is not available in the terminal client (seller #2).")

	require.NoError(t, app.Start(ctx))
	app.settle(ctx)
	assert.NotNil(t, app.current.auctions)

	out.Reset()
	require.NoError(t, app.Refresh(ctx))
	app.settle(ctx)
	assert.Contains(t, out.String(), "== Auctions ==")
}

func TestLoginFailures(t *testing.T) {
	app, _, out := newTestApp(t)

	stubInputs(t, "wrong", "alice")
	require.Error(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "[error] Invalid username or password")
	assert.False(t, app.isLoggedIn())

	stubInputs(t, "", "")
	require.Error(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "[error] Username and password are required")
}

func TestRegister(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, "pw", "dave", "dave@example.org", "Dave", "")
	require.NoError(t, app.Register(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "[ok] Welcome, Dave!")

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "[info] Logged out")

	stubInputs(t, "pw", "alice", "a@example.org", "", "")
	require.Error(t, app.Register(ctx))
	assert.Contains(t, out.String(), "Username already taken")
	assert.False(t, app.isLoggedIn())
}
