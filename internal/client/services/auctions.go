package services

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/common"
)

type AuctionService interface {
	List(ctx context.Context, filter listing.Filter) ([]models.Auction, error)
	Get(ctx context.Context, id int64) (models.Auction, error)
	Mine(ctx context.Context) ([]models.Auction, error)
	Watched(ctx context.Context) ([]models.Auction, error)
	Featured(ctx context.Context) ([]models.Auction, error)
	EndingSoon(ctx context.Context) ([]models.Auction, error)
	Popular(ctx context.Context) ([]models.Auction, error)
	Bids(ctx context.Context, id int64) ([]models.Bid, error)
	PlaceBid(ctx context.Context, id int64, amount float64) (models.Bid, error)

	// Watch and Unwatch make AuctionService usable as watchlist.Remote.
	Watch(ctx context.Context, id int64) error
	Unwatch(ctx context.Context, id int64) error
}

type auctionService struct {
	client client.Client
}

func NewAuctionService(c client.Client) AuctionService {
	return &auctionService{client: c}
}

func (s *auctionService) List(ctx context.Context, filter listing.Filter) ([]models.Auction, error) {
	items, err := s.client.ListAuctions(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return items, nil
}

func (s *auctionService) Get(ctx context.Context, id int64) (models.Auction, error) {
	a, err := s.client.GetAuction(ctx, id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("get auction %d: %w", id, err)
	}
	return a, nil
}

func (s *auctionService) Mine(ctx context.Context) ([]models.Auction, error) {
	return wrapList("my auctions", s.client.MyAuctions)(ctx)
}

// Watched marks every returned auction as watched, whatever the flag on
// the wire says.
func (s *auctionService) Watched(ctx context.Context) ([]models.Auction, error) {
	items, err := wrapList("watched auctions", s.client.WatchedAuctions)(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].SetWatched(true)
	}
	return items, nil
}

func (s *auctionService) Featured(ctx context.Context) ([]models.Auction, error) {
	return wrapList("featured auctions", s.client.FeaturedAuctions)(ctx)
}

func (s *auctionService) EndingSoon(ctx context.Context) ([]models.Auction, error) {
	return wrapList("ending soon auctions", s.client.EndingSoonAuctions)(ctx)
}

func (s *auctionService) Popular(ctx context.Context) ([]models.Auction, error) {
	return wrapList("popular auctions", s.client.PopularAuctions)(ctx)
}

func (s *auctionService) Bids(ctx context.Context, id int64) ([]models.Bid, error) {
	bids, err := s.client.AuctionBids(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bids for auction %d: %w", id, err)
	}
	return bids, nil
}

// PlaceBid forwards the bid; the server decides whether it wins. Only
// amounts that can never be valid are refused locally.
func (s *auctionService) PlaceBid(ctx context.Context, id int64, amount float64) (models.Bid, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Bid{}, fmt.Errorf("%w: bid amount must be a positive number", common.ErrRejected)
	}

	bid, err := s.client.PlaceBid(ctx, models.PlaceBidRequest{AuctionID: id, Amount: amount})
	if err != nil {
		return models.Bid{}, fmt.Errorf("place bid on auction %d: %w", id, err)
	}
	return bid, nil
}

func (s *auctionService) Watch(ctx context.Context, id int64) error {
	if err := s.client.WatchAuction(ctx, id); err != nil {
		return fmt.Errorf("watch auction %d: %w", id, err)
	}
	return nil
}

func (s *auctionService) Unwatch(ctx context.Context, id int64) error {
	if err := s.client.UnwatchAuction(ctx, id); err != nil {
		return fmt.Errorf("unwatch auction %d: %w", id, err)
	}
	return nil
}

func wrapList[T any](what string, fn func(context.Context) ([]T, error)) func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		items, err := fn(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		return items, nil
	}
}
