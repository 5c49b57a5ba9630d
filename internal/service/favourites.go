package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meshram0823/UrbanCart/internal/domain"
	"github.com/meshram0823/UrbanCart/internal/repository"
)

// FavouritesService applies the favourites transitions for a user and
// persists the resulting state. The transitions themselves are the pure
// reducers in the domain package; this service only hydrates, applies, and
// writes back.
type FavouritesService struct {
	store    repository.FavouritesRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewFavouritesService creates a new favourites service.
func NewFavouritesService(
	store repository.FavouritesRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) *FavouritesService {
	return &FavouritesService{
		store:    store,
		products: products,
		logger:   logger,
	}
}

// Get returns the user's current selection.
func (s *FavouritesService) Get(ctx context.Context, userID string) (domain.Favourites, error) {
	list, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favourites: %w", err)
	}
	return list, nil
}

// Add snapshots the product as of now and appends it to the user's
// selection. Adding a product that is already selected changes nothing.
func (s *FavouritesService) Add(ctx context.Context, userID string, productID primitive.ObjectID) (domain.Favourites, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	list, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favourites: %w", err)
	}

	next := domain.AddFavourite(list, *product)
	if len(next) == len(list) {
		return list, nil
	}

	if err := s.store.Save(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("save favourites: %w", err)
	}

	s.logger.InfoContext(ctx, "favourite added",
		slog.String("user_id", userID),
		slog.String("product_id", productID.Hex()),
	)

	return next, nil
}

// Remove drops the entry with the matching product ID from the user's
// selection. Removing an absent product changes nothing.
func (s *FavouritesService) Remove(ctx context.Context, userID string, productID primitive.ObjectID) (domain.Favourites, error) {
	list, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favourites: %w", err)
	}

	next := domain.RemoveFavourite(list, productID)
	if len(next) == len(list) {
		return list, nil
	}

	if err := s.store.Save(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("save favourites: %w", err)
	}

	s.logger.InfoContext(ctx, "favourite removed",
		slog.String("user_id", userID),
		slog.String("product_id", productID.Hex()),
	)

	return next, nil
}

// Replace sets the user's selection to the given sequence verbatim. Used by
// the client to restore a selection it hydrated elsewhere.
func (s *FavouritesService) Replace(ctx context.Context, userID string, products []domain.Product) (domain.Favourites, error) {
	next := domain.ReplaceFavourites(products)

	if err := s.store.Save(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("save favourites: %w", err)
	}

	return next, nil
}
