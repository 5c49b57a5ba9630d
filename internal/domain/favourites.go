package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favourites is a user's favourite-product selection: an ordered list of
// product snapshots, unique by product ID. Snapshots are value copies taken
// at the time of the Add, independent of the live catalog documents.
//
// All transitions are pure reducers: they take the current list plus a
// payload and return the next list, never mutating the input in place. An
// entry whose snapshot must change is removed and re-added.
type Favourites []Product

// AddFavourite appends the product snapshot to the end of the list.
// Adding an ID that is already present is a no-op, so the transition is
// idempotent.
func AddFavourite(list Favourites, p Product) Favourites {
	if list.Contains(p.ID) {
		return list
	}

	next := make(Favourites, len(list), len(list)+1)
	copy(next, list)
	return append(next, p)
}

// RemoveFavourite removes the entry with the matching product ID.
// Removing an absent ID leaves the list unchanged.
func RemoveFavourite(list Favourites, id primitive.ObjectID) Favourites {
	if !list.Contains(id) {
		return list
	}

	next := make(Favourites, 0, len(list)-1)
	for i := range list {
		if list[i].ID != id {
			next = append(next, list[i])
		}
	}
	return next
}

// ReplaceFavourites discards the current list and takes the given sequence
// verbatim. Used to hydrate the selection from persisted storage.
func ReplaceFavourites(products []Product) Favourites {
	next := make(Favourites, len(products))
	copy(next, products)
	return next
}

// Contains reports whether a product with the given ID is in the list.
func (f Favourites) Contains(id primitive.ObjectID) bool {
	for i := range f {
		if f[i].ID == id {
			return true
		}
	}
	return false
}
