package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/listing"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

type ProductService interface {
	List(ctx context.Context, filter listing.Filter) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Mine(ctx context.Context) ([]models.Product, error)
	Featured(ctx context.Context) ([]models.Product, error)
	NewArrivals(ctx context.Context) ([]models.Product, error)
}

type productService struct {
	client client.Client
}

func NewProductService(c client.Client) ProductService {
	return &productService{client: c}
}

func (s *productService) List(ctx context.Context, filter listing.Filter) ([]models.Product, error) {
	items, err := s.client.ListProducts(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (s *productService) Get(ctx context.Context, id int64) (models.Product, error) {
	p, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (s *productService) Mine(ctx context.Context) ([]models.Product, error) {
	return wrapList("my products", s.client.MyProducts)(ctx)
}

func (s *productService) Featured(ctx context.Context) ([]models.Product, error) {
	return wrapList("featured products", s.client.FeaturedProducts)(ctx)
}

func (s *productService) NewArrivals(ctx context.Context) ([]models.Product, error) {
	return wrapList("new arrivals", s.client.NewArrivals)(ctx)
}
