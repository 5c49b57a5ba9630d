package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meshram0823/UrbanCart/internal/domain"
)

// ProductFilter defines the optional criteria for the filter operation.
// Absent criteria impose no restriction; both are combinable with AND
// semantics.
type ProductFilter struct {
	// CategoryIDs restricts products to those whose category is in the set.
	CategoryIDs []primitive.ObjectID

	// MinPrice and MaxPrice bound the price inclusively. Either both are
	// set or neither.
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository defines product persistence operations against the
// document store. Identifiers are typed ObjectIDs: well-formedness is
// checked at the HTTP boundary, so a malformed identifier never reaches
// the store.
type ProductRepository interface {
	// Create inserts a new product, assigning its ID and creation time.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)

	// Search returns up to limit products whose name matches the keyword as
	// a case-insensitive pattern (no restriction when keyword is empty),
	// along with the total matching count.
	Search(ctx context.Context, keyword string, limit int64) ([]domain.Product, int64, error)

	// Update replaces the caller-supplied fields of an existing product and
	// returns the post-update document. Embedded reviews are preserved.
	Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) (*domain.Product, error)

	// SaveReviews persists the product's reviews and recomputed aggregates.
	SaveReviews(ctx context.Context, product *domain.Product) error

	// Delete removes a product by its identifier.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ListNewest returns up to limit products, newest-first by creation time.
	ListNewest(ctx context.Context, limit int64) ([]domain.Product, error)

	// ListTopRated returns up to limit products ordered by rating descending.
	ListTopRated(ctx context.Context, limit int64) ([]domain.Product, error)

	// ListLatestByID returns up to limit products ordered by identifier
	// descending, a proxy for insertion order.
	ListLatestByID(ctx context.Context, limit int64) ([]domain.Product, error)

	// Filter returns all products matching the filter, unpaginated.
	Filter(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	// Create inserts a new category, assigning its ID and creation time.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]domain.Category, error)
}

// FavouritesRepository persists a user's favourites selection. It stands in
// for the browser-local storage of the original storefront: the state
// machine itself never talks to it directly, the service writes the next
// state back after every transition.
type FavouritesRepository interface {
	// Get returns the persisted selection for the user, or an empty list
	// when none has been saved yet.
	Get(ctx context.Context, userID string) (domain.Favourites, error)

	// Save persists the selection for the user.
	Save(ctx context.Context, userID string, list domain.Favourites) error
}
