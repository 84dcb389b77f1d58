package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmaia/storefront-api/internal/model"
)

func usersWithIDs(ids ...int64) []*model.User {
	users := make([]*model.User, len(ids))
	for i, id := range ids {
		users[i] = &model.User{ID: id}
	}
	return users
}

func TestNextID_EmptyCollection(t *testing.T) {
	assert.Equal(t, int64(1), nextID(nil, userID))
}

func TestNextID_SparseIDs(t *testing.T) {
	assert.Equal(t, int64(6), nextID(usersWithIDs(1, 3, 5), userID))
}

func TestNextID_UnorderedIDs(t *testing.T) {
	assert.Equal(t, int64(8), nextID(usersWithIDs(7, 2, 4), userID))
}

func TestFindByID(t *testing.T) {
	users := usersWithIDs(1, 2, 3)
	users[1].Name = "Maria"

	found := findByID(users, userID, 2)
	assert.NotNil(t, found)
	assert.Equal(t, "Maria", found.Name)

	assert.Nil(t, findByID(users, userID, 99))
}

func TestRemoveByID(t *testing.T) {
	users := usersWithIDs(1, 2, 3)

	removed := removeByID(&users, userID, 2)
	assert.NotNil(t, removed)
	assert.Equal(t, int64(2), removed.ID)

	// Remaining records keep their order and ids.
	assert.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(3), users[1].ID)
}

func TestRemoveByID_Missing(t *testing.T) {
	users := usersWithIDs(1)
	assert.Nil(t, removeByID(&users, userID, 5))
	assert.Len(t, users, 1)
}
