package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaia/storefront-api/internal/dto"
)

func TestProductService_Create_ZeroStockUnavailable(t *testing.T) {
	env := newTestEnv()

	product := env.createProduct(t, "Smart TV", "1899.99", 0)
	assert.Equal(t, 0, product.Stock)
	assert.False(t, product.Available)
}

func TestProductService_Create_DefaultsStockAndDescription(t *testing.T) {
	env := newTestEnv()

	price := decimal.RequireFromString("9.99")
	product, err := env.products.Create(context.Background(), dto.CreateProductRequest{
		Name: "Cable", Price: &price, Category: "Accessories",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
	assert.False(t, product.Available)
	assert.Equal(t, "", product.Description)
}

func TestProductService_Create_NegativePriceRejected(t *testing.T) {
	env := newTestEnv()

	price := decimal.RequireFromString("-1")
	_, err := env.products.Create(context.Background(), dto.CreateProductRequest{
		Name: "Broken", Price: &price, Category: "Test",
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestProductService_Update_StockFlipsAvailability(t *testing.T) {
	env := newTestEnv()
	product := env.createProduct(t, "Smart TV", "1899.99", 0)

	stock := 5
	updated, err := env.products.Update(context.Background(), product.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stock)
	assert.True(t, updated.Available)

	stock = 0
	updated, err = env.products.Update(context.Background(), product.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.False(t, updated.Available)
}

func TestProductService_Update_EmptyDescriptionPersists(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	price := decimal.RequireFromString("10.00")
	desc := "has a description"
	product, err := env.products.Create(ctx, dto.CreateProductRequest{
		Name: "Widget", Price: &price, Category: "Test", Description: &desc,
	})
	require.NoError(t, err)

	// Explicit "" is a provided value, not an absent field.
	empty := ""
	updated, err := env.products.Update(ctx, product.ID, dto.UpdateProductRequest{Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)

	// And an absent description leaves the stored value alone.
	name := "Widget v2"
	updated, err = env.products.Update(ctx, product.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, "Widget v2", updated.Name)
}

func TestProductService_Update_ZeroPricePersists(t *testing.T) {
	env := newTestEnv()
	product := env.createProduct(t, "Freebie", "10.00", 1)

	zero := decimal.Zero
	updated, err := env.products.Update(context.Background(), product.ID, dto.UpdateProductRequest{Price: &zero})
	require.NoError(t, err)
	assert.True(t, updated.Price.IsZero())
}

func TestProductService_List_BadPriceFilter(t *testing.T) {
	env := newTestEnv()

	_, err := env.products.List(context.Background(), dto.ListProductsRequest{MinPrice: "abc"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "minPrice must be a decimal number", vErr.Message)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.products.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
