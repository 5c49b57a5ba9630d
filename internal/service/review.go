package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meshram0823/UrbanCart/internal/domain"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

// ReviewInput holds the parameters for adding a review. UserID and UserName
// identify the authenticated caller attached by upstream middleware.
type ReviewInput struct {
	UserID   primitive.ObjectID
	UserName string
	Rating   int
	Comment  string
}

// AddReview appends a review to the product and recomputes the aggregate
// rating. At most one review may exist per (product, user) pair.
//
// The read-modify-write over the embedded reviews array is serialized per
// product with a keyed mutex, so two concurrent reviews cannot interleave
// their reads and overwrite each other's recomputation.
func (s *ProductService) AddReview(ctx context.Context, productID primitive.ObjectID, input *ReviewInput) error {
	unlock := s.locks.lock(productID)
	defer unlock()

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	// A repeat reviewer is rejected before field validation, so a duplicate
	// is always reported as a duplicate.
	if product.ReviewedBy(input.UserID) {
		return apperrors.Conflict("Product already reviewed")
	}

	if input.Rating == 0 || input.Comment == "" {
		return apperrors.InvalidInput("Rating and comment are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return apperrors.InvalidInput("Rating must be between 1 and 5")
	}

	review := domain.Review{
		ID:        primitive.NewObjectID(),
		User:      input.UserID,
		Name:      input.UserName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}
	product.AddReview(review)

	if err := s.repo.SaveReviews(ctx, product); err != nil {
		if apperrors.HTTPStatus(err) != 500 {
			return err
		}
		return apperrors.Store(err)
	}

	if err := s.producer.PublishReviewAdded(ctx, product, &review); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review_added event",
			slog.String("product_id", productID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "review added",
		slog.String("product_id", productID.Hex()),
		slog.String("user_id", input.UserID.Hex()),
		slog.Int("rating", input.Rating),
		slog.Float64("new_rating", product.Rating),
	)

	return nil
}

// productLocks serializes review writes per product identifier. Entries are
// reference counted and removed once the last holder unlocks, so the map
// does not grow with the catalog.
type productLocks struct {
	mu      sync.Mutex
	entries map[primitive.ObjectID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newProductLocks() *productLocks {
	return &productLocks{
		entries: make(map[primitive.ObjectID]*lockEntry),
	}
}

func (pl *productLocks) lock(id primitive.ObjectID) (unlock func()) {
	pl.mu.Lock()
	entry, ok := pl.entries[id]
	if !ok {
		entry = &lockEntry{}
		pl.entries[id] = entry
	}
	entry.refs++
	pl.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		pl.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(pl.entries, id)
		}
		pl.mu.Unlock()
	}
}
