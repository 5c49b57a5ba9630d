package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/meshram0823/UrbanCart/internal/domain"
)

const keyPrefix = "favourites:"

// FavouritesRepository persists favourites selections in Redis as one JSON
// blob per user, the server-side counterpart of the storefront's
// local-storage persistence. No TTL: favourites survive until replaced.
type FavouritesRepository struct {
	client *redis.Client
}

// NewFavouritesRepository creates a Redis-backed favourites repository.
func NewFavouritesRepository(client *redis.Client) *FavouritesRepository {
	return &FavouritesRepository{client: client}
}

// Get returns the persisted selection for the user. A user with no saved
// selection gets an empty list, not an error.
func (r *FavouritesRepository) Get(ctx context.Context, userID string) (domain.Favourites, error) {
	data, err := r.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Favourites{}, nil
		}
		return nil, fmt.Errorf("redis get favourites: %w", err)
	}

	var list domain.Favourites
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("unmarshal favourites: %w", err)
	}

	return list, nil
}

// Save persists the selection for the user.
func (r *FavouritesRepository) Save(ctx context.Context, userID string, list domain.Favourites) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal favourites: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set favourites: %w", err)
	}

	return nil
}
