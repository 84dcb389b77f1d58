package repository

import "github.com/dmaia/storefront-api/internal/model"

// Generic bookkeeping over an ordered collection of records. The id
// accessor keeps these independent of the concrete record type.
// Callers must hold the store lock.

// nextID returns max(existing ids) + 1, or 1 for an empty collection.
func nextID[T any](items []*T, id func(*T) int64) int64 {
	next := int64(1)
	for _, it := range items {
		if id(it) >= next {
			next = id(it) + 1
		}
	}
	return next
}

// findByID returns the first record with a matching id, or nil.
func findByID[T any](items []*T, id func(*T) int64, want int64) *T {
	for _, it := range items {
		if id(it) == want {
			return it
		}
	}
	return nil
}

// removeByID removes and returns the first record with a matching id.
// Remaining records keep their order and identifiers.
func removeByID[T any](items *[]*T, id func(*T) int64, want int64) *T {
	for i, it := range *items {
		if id(it) == want {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return it
		}
	}
	return nil
}

var (
	userID    = func(u *model.User) int64 { return u.ID }
	productID = func(p *model.Product) int64 { return p.ID }
	orderID   = func(o *model.Order) int64 { return o.ID }
)
