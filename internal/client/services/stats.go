package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

type StatsService interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
	Seller(ctx context.Context) (models.SellerStats, error)
}

type statsService struct {
	client client.Client
}

func NewStatsService(c client.Client) StatsService {
	return &statsService{client: c}
}

func (s *statsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	st, err := s.client.DashboardStats(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return st, nil
}

func (s *statsService) Seller(ctx context.Context) (models.SellerStats, error) {
	st, err := s.client.SellerStats(ctx)
	if err != nil {
		return models.SellerStats{}, fmt.Errorf("seller stats: %w", err)
	}
	return st, nil
}
