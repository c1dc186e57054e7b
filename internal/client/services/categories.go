package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

type CategoryService interface {
	All(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (models.Category, error)
	Main(ctx context.Context) ([]models.Category, error)
	Subcategories(ctx context.Context, parentID int64) ([]models.Category, error)
	Popular(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	client client.Client
}

func NewCategoryService(c client.Client) CategoryService {
	return &categoryService{client: c}
}

func (s *categoryService) All(ctx context.Context) ([]models.Category, error) {
	return wrapList("categories", s.client.ListCategories)(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (models.Category, error) {
	c, err := s.client.GetCategory(ctx, id)
	if err != nil {
		return models.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

func (s *categoryService) Main(ctx context.Context) ([]models.Category, error) {
	return wrapList("main categories", s.client.MainCategories)(ctx)
}

func (s *categoryService) Subcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	items, err := s.client.Subcategories(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("subcategories of %d: %w", parentID, err)
	}
	return items, nil
}

func (s *categoryService) Popular(ctx context.Context) ([]models.Category, error) {
	return wrapList("popular categories", s.client.PopularCategories)(ctx)
}
