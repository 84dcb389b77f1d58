package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/model"
	"github.com/dmaia/storefront-api/internal/repository"
)

func TestOrderService_Create(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.createUser(t, "João", "joao@email.com")
	product := env.createProduct(t, "Headphones", "10.00", 5)

	order, err := env.orders.Create(ctx, dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderLineRequest{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, model.OrderStatusProcessing, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("20.00")))
	assert.False(t, order.CreatedAt.IsZero())
	assert.Nil(t, order.DeliveredAt)

	stored, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}

func TestOrderService_Create_UserNotFound(t *testing.T) {
	env := newTestEnv()
	product := env.createProduct(t, "Headphones", "10.00", 5)

	_, err := env.orders.Create(context.Background(), dto.CreateOrderRequest{
		UserID:   42,
		Products: []dto.OrderLineRequest{{ProductID: product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOrderService_Create_ProductNotFound(t *testing.T) {
	env := newTestEnv()
	user := env.createUser(t, "João", "joao@email.com")

	_, err := env.orders.Create(context.Background(), dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderLineRequest{{ProductID: 42, Quantity: 1}},
	})

	var notFound *repository.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ID)
}

func TestOrderService_Create_InsufficientStock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.createUser(t, "João", "joao@email.com")
	product := env.createProduct(t, "Smart TV", "1899.99", 1)

	_, err := env.orders.Create(ctx, dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderLineRequest{{ProductID: product.ID, Quantity: 3}},
	})

	var noStock *repository.InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, "Smart TV", noStock.Name)

	stored, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)
}

func TestOrderService_UpdateStatus_DeliveredSetsTimestamp(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.createUser(t, "João", "joao@email.com")
	product := env.createProduct(t, "Headphones", "10.00", 5)
	order, err := env.orders.Create(ctx, dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderLineRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	delivered, err := env.orders.UpdateStatus(ctx, order.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)

	// Cancelling afterwards keeps the delivery timestamp.
	cancelled, err := env.orders.UpdateStatus(ctx, order.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.DeliveredAt)
	assert.Equal(t, *delivered.DeliveredAt, *cancelled.DeliveredAt)
}

func TestOrderService_UpdateStatus_CancellationKeepsStock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.createUser(t, "João", "joao@email.com")
	product := env.createProduct(t, "Headphones", "10.00", 5)
	order, err := env.orders.Create(ctx, dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderLineRequest{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Cancellation does not restock; decremented inventory stays gone.
	_, err = env.orders.UpdateStatus(ctx, order.ID, "cancelled")
	require.NoError(t, err)

	stored, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	env := newTestEnv()

	_, err := env.orders.UpdateStatus(context.Background(), 1, "teleported")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Status must be one of: processing, shipped, delivered, cancelled", vErr.Message)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.orders.UpdateStatus(context.Background(), 9, "shipped")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_List_Filters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first := env.createUser(t, "João", "joao@email.com")
	second := env.createUser(t, "Maria", "maria@email.com")
	product := env.createProduct(t, "Headphones", "10.00", 50)

	for _, uid := range []int64{first.ID, first.ID, second.ID} {
		_, err := env.orders.Create(ctx, dto.CreateOrderRequest{
			UserID:   uid,
			Products: []dto.OrderLineRequest{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	mine, err := env.orders.List(ctx, dto.ListOrdersRequest{UserID: &first.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	processing, err := env.orders.List(ctx, dto.ListOrdersRequest{Status: "Processing"})
	require.NoError(t, err)
	assert.Len(t, processing, 3)
}
