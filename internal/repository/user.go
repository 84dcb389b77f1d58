package repository

import (
	"context"
	"strings"
	"time"

	"github.com/dmaia/storefront-api/internal/model"
)

type UserFilter struct {
	// City matches as a case-insensitive substring.
	City string
	// MinAge keeps users at least this old. Users without an age never match.
	MinAge *int
}

type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) (*model.User, error)
}

type memUserRepo struct{ store *Store }

func NewUserRepository(store *Store) UserRepository {
	return &memUserRepo{store: store}
}

func (r *memUserRepo) List(_ context.Context, filter UserFilter) ([]*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*model.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		if filter.City != "" {
			if u.City == nil || !strings.Contains(strings.ToLower(*u.City), strings.ToLower(filter.City)) {
				continue
			}
		}
		if filter.MinAge != nil {
			if u.Age == nil || *u.Age < *filter.MinAge {
				continue
			}
		}
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u := findByID(r.store.users, userID, id)
	if u == nil {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = nextID(r.store.users, userID)
	user.CreatedAt = time.Now().UTC()
	r.store.users = append(r.store.users, cloneUser(user))
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if stored := findByID(r.store.users, userID, user.ID); stored != nil {
		*stored = *cloneUser(user)
	}
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	removed := removeByID(&r.store.users, userID, id)
	if removed == nil {
		return nil, nil
	}
	return removed, nil
}

// cloneUser keeps store-owned records from aliasing caller memory.
func cloneUser(u *model.User) *model.User {
	clone := *u
	if u.Age != nil {
		age := *u.Age
		clone.Age = &age
	}
	if u.City != nil {
		city := *u.City
		clone.City = &city
	}
	return &clone
}
