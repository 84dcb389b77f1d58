package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmaia/storefront-api/internal/model"
)

// Seed loads the demo dataset into an empty store.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []*model.User{
		{ID: 1, Name: "João Silva", Email: "joao@email.com", Age: intPtr(28), City: strPtr("São Paulo"), CreatedAt: seedTime("2024-01-15T10:30:00Z")},
		{ID: 2, Name: "Maria Santos", Email: "maria@email.com", Age: intPtr(32), City: strPtr("Rio de Janeiro"), CreatedAt: seedTime("2024-01-20T14:45:00Z")},
		{ID: 3, Name: "Pedro Oliveira", Email: "pedro@email.com", Age: intPtr(25), City: strPtr("Belo Horizonte"), CreatedAt: seedTime("2024-02-01T09:15:00Z")},
		{ID: 4, Name: "Ana Costa", Email: "ana@email.com", Age: intPtr(29), City: strPtr("Porto Alegre"), CreatedAt: seedTime("2024-02-10T16:20:00Z")},
	}

	s.products = []*model.Product{
		{ID: 1, Name: "Galaxy Smartphone", Price: decimal.RequireFromString("1299.99"), Category: "Electronics", Description: "Smartphone with 128GB of storage", Stock: 50, Available: true},
		{ID: 2, Name: "Gaming Laptop", Price: decimal.RequireFromString("2899.99"), Category: "Electronics", Description: "Gaming laptop with a dedicated graphics card", Stock: 15, Available: true},
		{ID: 3, Name: "Bluetooth Headphones", Price: decimal.RequireFromString("199.99"), Category: "Accessories", Description: "Wireless headphones with noise cancellation", Stock: 100, Available: true},
		{ID: 4, Name: "55'' Smart TV", Price: decimal.RequireFromString("1899.99"), Category: "Electronics", Description: "4K TV with Android TV", Stock: 0, Available: false},
		{ID: 5, Name: "Mechanical Keyboard", Price: decimal.RequireFromString("299.99"), Category: "Accessories", Description: "Gaming keyboard with blue switches", Stock: 25, Available: true},
	}

	delivered := seedTime("2024-02-20T14:00:00Z")
	s.orders = []*model.Order{
		{
			ID:     1,
			UserID: 1,
			Products: []model.OrderLine{
				{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("1299.99")},
				{ProductID: 3, Quantity: 2, UnitPrice: decimal.RequireFromString("199.99")},
			},
			Total:       decimal.RequireFromString("1699.97"),
			Status:      model.OrderStatusDelivered,
			CreatedAt:   seedTime("2024-02-15T10:30:00Z"),
			DeliveredAt: &delivered,
		},
		{
			ID:     2,
			UserID: 2,
			Products: []model.OrderLine{
				{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("2899.99")},
			},
			Total:     decimal.RequireFromString("2899.99"),
			Status:    model.OrderStatusProcessing,
			CreatedAt: seedTime("2024-02-18T16:45:00Z"),
		},
		{
			ID:     3,
			UserID: 3,
			Products: []model.OrderLine{
				{ProductID: 5, Quantity: 1, UnitPrice: decimal.RequireFromString("299.99")},
				{ProductID: 3, Quantity: 1, UnitPrice: decimal.RequireFromString("199.99")},
			},
			Total:     decimal.RequireFromString("499.98"),
			Status:    model.OrderStatusShipped,
			CreatedAt: seedTime("2024-02-20T09:15:00Z"),
		},
	}
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
