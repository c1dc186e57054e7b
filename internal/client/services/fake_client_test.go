package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

// fakeClient implements client.Client for service tests. Unset results are
// zero values; Err is returned by every call when set.
type fakeClient struct {
	Err error

	AuthResp  models.AuthResponse
	Auctions  []models.Auction
	Auction   models.Auction
	Products  []models.Product
	Product   models.Product
	Category  models.Category
	Cats      []models.Category
	Bid       models.Bid
	Bids      []models.Bid
	Dashboard models.DashboardStats
	SellerSt  models.SellerStats

	Calls     []string
	LastQuery url.Values
	LastLogin models.LoginRequest
	LastReg   models.RegisterRequest
	LastBid   models.PlaceBidRequest
	LastID    int64
}

func (f *fakeClient) call(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Close() error               { f.call("Close"); return f.Err }
func (f *fakeClient) Ping(context.Context) error { f.call("Ping"); return f.Err }
func (f *fakeClient) Refresh(context.Context) (string, error) {
	f.call("Refresh")
	return "", f.Err
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	f.call("Login")
	f.LastLogin = req
	return f.AuthResp, f.Err
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	f.call("Register")
	f.LastReg = req
	return f.AuthResp, f.Err
}

func (f *fakeClient) auctions(name string) ([]models.Auction, error) {
	f.call(name)
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Auction(nil), f.Auctions...), nil
}

func (f *fakeClient) ListAuctions(_ context.Context, q url.Values) ([]models.Auction, error) {
	f.LastQuery = q
	return f.auctions("ListAuctions")
}

func (f *fakeClient) GetAuction(_ context.Context, id int64) (models.Auction, error) {
	f.call("GetAuction")
	f.LastID = id
	return f.Auction, f.Err
}

func (f *fakeClient) MyAuctions(context.Context) ([]models.Auction, error) {
	return f.auctions("MyAuctions")
}

func (f *fakeClient) WatchedAuctions(context.Context) ([]models.Auction, error) {
	return f.auctions("WatchedAuctions")
}

func (f *fakeClient) FeaturedAuctions(context.Context) ([]models.Auction, error) {
	return f.auctions("FeaturedAuctions")
}

func (f *fakeClient) EndingSoonAuctions(context.Context) ([]models.Auction, error) {
	return f.auctions("EndingSoonAuctions")
}

func (f *fakeClient) PopularAuctions(context.Context) ([]models.Auction, error) {
	return f.auctions("PopularAuctions")
}

func (f *fakeClient) WatchAuction(_ context.Context, id int64) error {
	f.call("WatchAuction")
	f.LastID = id
	return f.Err
}

func (f *fakeClient) UnwatchAuction(_ context.Context, id int64) error {
	f.call("UnwatchAuction")
	f.LastID = id
	return f.Err
}

func (f *fakeClient) PlaceBid(_ context.Context, req models.PlaceBidRequest) (models.Bid, error) {
	f.call("PlaceBid")
	f.LastBid = req
	return f.Bid, f.Err
}

func (f *fakeClient) AuctionBids(_ context.Context, id int64) ([]models.Bid, error) {
	f.call("AuctionBids")
	f.LastID = id
	return f.Bids, f.Err
}

func (f *fakeClient) products(name string) ([]models.Product, error) {
	f.call(name)
	return f.Products, f.Err
}

func (f *fakeClient) ListProducts(_ context.Context, q url.Values) ([]models.Product, error) {
	f.LastQuery = q
	return f.products("ListProducts")
}

func (f *fakeClient) GetProduct(_ context.Context, id int64) (models.Product, error) {
	f.call("GetProduct")
	f.LastID = id
	return f.Product, f.Err
}

func (f *fakeClient) MyProducts(context.Context) ([]models.Product, error) {
	return f.products("MyProducts")
}

func (f *fakeClient) FeaturedProducts(context.Context) ([]models.Product, error) {
	return f.products("FeaturedProducts")
}

func (f *fakeClient) NewArrivals(context.Context) ([]models.Product, error) {
	return f.products("NewArrivals")
}

func (f *fakeClient) categories(name string) ([]models.Category, error) {
	f.call(name)
	return f.Cats, f.Err
}

func (f *fakeClient) ListCategories(context.Context) ([]models.Category, error) {
	return f.categories("ListCategories")
}

func (f *fakeClient) GetCategory(_ context.Context, id int64) (models.Category, error) {
	f.call("GetCategory")
	f.LastID = id
	return f.Category, f.Err
}

func (f *fakeClient) MainCategories(context.Context) ([]models.Category, error) {
	return f.categories("MainCategories")
}

func (f *fakeClient) Subcategories(_ context.Context, id int64) ([]models.Category, error) {
	f.LastID = id
	return f.categories("Subcategories")
}

func (f *fakeClient) PopularCategories(context.Context) ([]models.Category, error) {
	return f.categories("PopularCategories")
}

func (f *fakeClient) DashboardStats(context.Context) (models.DashboardStats, error) {
	f.call("DashboardStats")
	return f.Dashboard, f.Err
}

func (f *fakeClient) SellerStats(context.Context) (models.SellerStats, error) {
	f.call("SellerStats")
	return f.SellerSt, f.Err
}
