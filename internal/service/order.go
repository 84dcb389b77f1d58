package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/model"
	"github.com/dmaia/storefront-api/internal/repository"
)

type OrderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, userRepo: userRepo}
}

func (s *OrderService) List(ctx context.Context, req dto.ListOrdersRequest) ([]*model.Order, error) {
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{UserID: req.UserID, Status: req.Status})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Create places an order: the user must exist, every line must reference
// a product with enough stock, unit prices are snapshotted and inventory
// decremented. The repository runs the per-line work as a single unit, so
// a rejected placement changes no stock at all.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	lines := make([]model.OrderLine, len(req.Products))
	for i, item := range req.Products {
		lines[i] = model.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := s.orderRepo.Place(ctx, req.UserID, lines)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	next := model.OrderStatus(status)
	if !next.Valid() {
		allowed := make([]string, 0, len(model.OrderStatuses()))
		for _, st := range model.OrderStatuses() {
			allowed = append(allowed, string(st))
		}
		return nil, validationErrorf("Status must be one of: %s", strings.Join(allowed, ", "))
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
