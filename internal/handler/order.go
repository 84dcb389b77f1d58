package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/repository"
	"github.com/dmaia/storefront-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondList(c, orders, len(orders))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "userId and products are required")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		var notFound *repository.ProductNotFoundError
		var noStock *repository.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.As(err, &notFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("Product with id %d not found", notFound.ID))
		case errors.As(err, &noStock):
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Insufficient stock for product %s", noStock.Name))
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondMessage(c, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, http.StatusNotFound, "Order not found")
		case errors.As(err, &vErr):
			respondError(c, http.StatusBadRequest, vErr.Message)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Order status updated successfully", order)
}
