package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.productService.List(c.Request.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondError(c, http.StatusBadRequest, vErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondList(c, products, len(products))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, price and category are required")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondError(c, http.StatusBadRequest, vErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondError(c, http.StatusBadRequest, vErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.productService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(c, http.StatusOK, "Product removed successfully", product)
}
