package client

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Refresh(ctx context.Context) (string, error)

	ListAuctions(ctx context.Context, query url.Values) ([]models.Auction, error)
	GetAuction(ctx context.Context, id int64) (models.Auction, error)
	MyAuctions(ctx context.Context) ([]models.Auction, error)
	WatchedAuctions(ctx context.Context) ([]models.Auction, error)
	FeaturedAuctions(ctx context.Context) ([]models.Auction, error)
	EndingSoonAuctions(ctx context.Context) ([]models.Auction, error)
	PopularAuctions(ctx context.Context) ([]models.Auction, error)
	WatchAuction(ctx context.Context, id int64) error
	UnwatchAuction(ctx context.Context, id int64) error
	PlaceBid(ctx context.Context, req models.PlaceBidRequest) (models.Bid, error)
	AuctionBids(ctx context.Context, id int64) ([]models.Bid, error)

	ListProducts(ctx context.Context, query url.Values) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	MyProducts(ctx context.Context) ([]models.Product, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	NewArrivals(ctx context.Context) ([]models.Product, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	MainCategories(ctx context.Context) ([]models.Category, error)
	Subcategories(ctx context.Context, parentID int64) ([]models.Category, error)
	PopularCategories(ctx context.Context) ([]models.Category, error)

	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	SellerStats(ctx context.Context) (models.SellerStats, error)
}

// TokenSource supplies the bearer token and receives refreshed ones.
// *session.Session satisfies it.
type TokenSource interface {
	Token() string
	SetToken(ctx context.Context, token string) error
}
