package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmaia/storefront-api/internal/model"
)

type ProductFilter struct {
	// Category matches as a case-insensitive substring.
	Category  string
	Available *bool
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) (*model.Product, error)
}

type memProductRepo struct{ store *Store }

func NewProductRepository(store *Store) ProductRepository {
	return &memProductRepo{store: store}
}

func (r *memProductRepo) List(_ context.Context, filter ProductFilter) ([]*model.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*model.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if filter.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.Available != nil && p.Available != *filter.Available {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		clone := *p
		products = append(products, &clone)
	}
	return products, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*model.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p := findByID(r.store.products, productID, id)
	if p == nil {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) Create(_ context.Context, product *model.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product.ID = nextID(r.store.products, productID)
	product.Available = product.Stock > 0
	clone := *product
	r.store.products = append(r.store.products, &clone)
	return nil
}

func (r *memProductRepo) Update(_ context.Context, product *model.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if stored := findByID(r.store.products, productID, product.ID); stored != nil {
		*stored = *product
	}
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) (*model.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	removed := removeByID(&r.store.products, productID, id)
	if removed == nil {
		return nil, nil
	}
	return removed, nil
}
