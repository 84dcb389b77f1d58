package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/model"
	"github.com/dmaia/storefront-api/internal/repository"
)

type StatsService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewStatsService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *StatsService {
	return &StatsService{userRepo: userRepo, productRepo: productRepo, orderRepo: orderRepo}
}

// Collect aggregates the read-only statistics: entity counts, total
// revenue, average order value and per-status order counts. Status
// counts are zero-filled so every status always appears.
func (s *StatsService) Collect(ctx context.Context) (*dto.StatsResponse, error) {
	users, err := s.userRepo.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	products, err := s.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	byStatus := make(map[string]int, len(model.OrderStatuses()))
	for _, st := range model.OrderStatuses() {
		byStatus[string(st)] = 0
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
		byStatus[string(o.Status)]++
	}

	average := decimal.Zero
	if len(orders) > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	return &dto.StatsResponse{
		TotalUsers:        len(users),
		TotalProducts:     len(products),
		TotalOrders:       len(orders),
		TotalRevenue:      revenue.Round(2),
		AverageOrderValue: average,
		OrdersByStatus:    byStatus,
	}, nil
}
