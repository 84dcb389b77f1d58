package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/model"
	"github.com/dmaia/storefront-api/internal/repository"
)

// testEnv wires every service against one fresh in-memory store.
type testEnv struct {
	users    *UserService
	products *ProductService
	orders   *OrderService
	stats    *StatsService
}

func newTestEnv() *testEnv {
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	productRepo := repository.NewProductRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	return &testEnv{
		users:    NewUserService(userRepo),
		products: NewProductService(productRepo),
		orders:   NewOrderService(orderRepo, userRepo),
		stats:    NewStatsService(userRepo, productRepo, orderRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user, err := e.users.Create(context.Background(), dto.CreateUserRequest{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createProduct(t *testing.T, name, price string, stock int) *model.Product {
	t.Helper()
	p := decimal.RequireFromString(price)
	product, err := e.products.Create(context.Background(), dto.CreateProductRequest{
		Name: name, Price: &p, Category: "Test", Stock: &stock,
	})
	require.NoError(t, err)
	return product
}
