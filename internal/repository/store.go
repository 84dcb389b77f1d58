package repository

import (
	"sync"

	"github.com/dmaia/storefront-api/internal/model"
)

// Store owns the three in-memory collections. It is created once per
// process (or per test) and handed to the repositories, which serialize
// every access on mu. Order placement holds the write lock across its
// whole validate-and-commit sequence, so a concurrent stock check can
// never interleave with a decrement.
type Store struct {
	mu       sync.RWMutex
	users    []*model.User
	products []*model.Product
	orders   []*model.Order
}

func NewStore() *Store {
	return &Store{}
}
