package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmaia/storefront-api/internal/model"
)

// ProductNotFoundError reports an order line referencing an unknown product.
type ProductNotFoundError struct{ ID int64 }

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}

// InsufficientStockError reports an order line asking for more units
// than the product has in stock.
type InsufficientStockError struct{ Name string }

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.Name)
}

type OrderFilter struct {
	UserID *int64
	// Status compares case-insensitively.
	Status string
}

type OrderRepository interface {
	List(ctx context.Context, filter OrderFilter) ([]*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// Place runs the whole placement workflow as one unit: it resolves
	// every line, checks stock, snapshots unit prices, decrements
	// inventory and appends the order, all under the store write lock.
	// A failed placement leaves every product untouched.
	Place(ctx context.Context, userID int64, lines []model.OrderLine) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

type memOrderRepo struct{ store *Store }

func NewOrderRepository(store *Store) OrderRepository {
	return &memOrderRepo{store: store}
}

func (r *memOrderRepo) List(_ context.Context, filter OrderFilter) ([]*model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*model.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(string(o.Status), filter.Status) {
			continue
		}
		orders = append(orders, cloneOrder(o))
	}
	return orders, nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id int64) (*model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o := findByID(r.store.orders, orderID, id)
	if o == nil {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *memOrderRepo) Place(_ context.Context, userID int64, lines []model.OrderLine) (*model.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Validate phase: nothing is mutated until every line checks out.
	resolved := make([]*model.Product, len(lines))
	for i, line := range lines {
		product := findByID(r.store.products, productID, line.ProductID)
		if product == nil {
			return nil, &ProductNotFoundError{ID: line.ProductID}
		}
		if product.Stock < line.Quantity {
			return nil, &InsufficientStockError{Name: product.Name}
		}
		resolved[i] = product
	}

	// Commit phase: snapshot prices, accumulate the total, decrement stock.
	total := decimal.Zero
	for i := range lines {
		product := resolved[i]
		lines[i].UnitPrice = product.Price
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(lines[i].Quantity))))
		product.SetStock(product.Stock - lines[i].Quantity)
	}

	order := &model.Order{
		ID:        nextID(r.store.orders, orderID),
		UserID:    userID,
		Products:  lines,
		Total:     total.Round(2),
		Status:    model.OrderStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	r.store.orders = append(r.store.orders, cloneOrder(order))
	return order, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o := findByID(r.store.orders, orderID, id)
	if o == nil {
		return nil, nil
	}

	o.Status = status
	// DeliveredAt is written on delivery and deliberately kept on any
	// later transition, including a cancellation after delivery.
	if status == model.OrderStatusDelivered {
		now := time.Now().UTC()
		o.DeliveredAt = &now
	}
	return cloneOrder(o), nil
}

func cloneOrder(o *model.Order) *model.Order {
	clone := *o
	clone.Products = make([]model.OrderLine, len(o.Products))
	copy(clone.Products, o.Products)
	if o.DeliveredAt != nil {
		deliveredAt := *o.DeliveredAt
		clone.DeliveredAt = &deliveredAt
	}
	return &clone
}
