package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func favProduct(name string) Product {
	return Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: 9.99,
	}
}

func TestAddFavourite_AppendsAtEnd(t *testing.T) {
	a := favProduct("a")
	b := favProduct("b")

	list := AddFavourite(nil, a)
	list = AddFavourite(list, b)

	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
}

func TestAddFavourite_Idempotent(t *testing.T) {
	a := favProduct("a")

	list := AddFavourite(nil, a)
	again := AddFavourite(list, a)

	assert.Len(t, again, 1)
}

func TestAddFavourite_DoesNotMutateInput(t *testing.T) {
	a := favProduct("a")
	b := favProduct("b")

	list := AddFavourite(nil, a)
	_ = AddFavourite(list, b)

	assert.Len(t, list, 1)
}

func TestAddFavourite_SnapshotIndependentOfSource(t *testing.T) {
	a := favProduct("a")

	list := AddFavourite(nil, a)
	a.Price = 199.99

	assert.Equal(t, 9.99, list[0].Price)
}

func TestRemoveFavourite(t *testing.T) {
	a := favProduct("a")
	b := favProduct("b")
	c := favProduct("c")

	list := ReplaceFavourites([]Product{a, b, c})
	next := RemoveFavourite(list, b.ID)

	require.Len(t, next, 2)
	assert.Equal(t, a.ID, next[0].ID)
	assert.Equal(t, c.ID, next[1].ID)
	// The input list is untouched.
	assert.Len(t, list, 3)
}

func TestRemoveFavourite_AbsentIsNoOp(t *testing.T) {
	a := favProduct("a")

	list := ReplaceFavourites([]Product{a})
	next := RemoveFavourite(list, primitive.NewObjectID())

	assert.Equal(t, list, next)
}

func TestReplaceFavourites_Verbatim(t *testing.T) {
	a := favProduct("a")
	b := favProduct("b")

	list := ReplaceFavourites([]Product{b, a})

	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestContains(t *testing.T) {
	a := favProduct("a")
	list := ReplaceFavourites([]Product{a})

	assert.True(t, list.Contains(a.ID))
	assert.False(t, list.Contains(primitive.NewObjectID()))
	assert.False(t, Favourites(nil).Contains(a.ID))
}
