package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/model"
	"github.com/dmaia/storefront-api/internal/repository"
)

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) List(ctx context.Context, req dto.ListProductsRequest) ([]*model.Product, error) {
	filter := repository.ProductFilter{
		Category:  req.Category,
		Available: req.Available,
	}

	if req.MinPrice != "" {
		min, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return nil, validationErrorf("minPrice must be a decimal number")
		}
		filter.MinPrice = &min
	}
	if req.MaxPrice != "" {
		max, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return nil, validationErrorf("maxPrice must be a decimal number")
		}
		filter.MaxPrice = &max
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	if req.Price.IsNegative() {
		return nil, validationErrorf("price must not be negative")
	}

	product := &model.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Category: req.Category,
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		product.SetStock(*req.Stock)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, validationErrorf("price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		product.SetStock(*req.Stock)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (*model.Product, error) {
	removed, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	if removed == nil {
		return nil, ErrProductNotFound
	}
	return removed, nil
}
