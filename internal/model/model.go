package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every accepted status, in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	City      *string   `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Available   bool            `json:"available"`
}

// SetStock writes the stock level and keeps Available in sync with it.
// Every stock mutation must go through here.
func (p *Product) SetStock(stock int) {
	p.Stock = stock
	p.Available = stock > 0
}

// OrderLine is one product entry within an order. UnitPrice is the
// product price captured at placement time and never changes afterwards.
type OrderLine struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Products    []OrderLine     `json:"products"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	DeliveredAt *time.Time      `json:"deliveredAt"`
}
