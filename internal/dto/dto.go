package dto

import (
	"github.com/shopspring/decimal"
)

// --- Users ---

type CreateUserRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Age   *int    `json:"age" binding:"omitempty,min=0"`
	City  *string `json:"city"`
}

// Update requests use pointer fields so an absent field and a provided
// zero value ("" or 0) stay distinguishable.

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Age   *int    `json:"age" binding:"omitempty,min=0"`
	City  *string `json:"city"`
}

type ListUsersRequest struct {
	City string `form:"city"`
	Age  *int   `form:"age" binding:"omitempty,min=0"`
}

// --- Products ---

type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
}

// Price bounds arrive as strings and are parsed by the service so a
// bad value turns into a 400 instead of a silent zero.
type ListProductsRequest struct {
	Category  string `form:"category"`
	Available *bool  `form:"available"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
}

// --- Orders ---

type OrderLineRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	UserID   int64              `json:"userId" binding:"required"`
	Products []OrderLineRequest `json:"products" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListOrdersRequest struct {
	UserID *int64 `form:"userId"`
	Status string `form:"status"`
}

// --- Stats ---

type StatsResponse struct {
	TotalUsers        int             `json:"totalUsers"`
	TotalProducts     int             `json:"totalProducts"`
	TotalOrders       int             `json:"totalOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	OrdersByStatus    map[string]int  `json:"ordersByStatus"`
}
