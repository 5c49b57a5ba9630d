package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/meshram0823/UrbanCart/internal/domain"
	"github.com/meshram0823/UrbanCart/internal/repository"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

const productsNS = "urbancart." + productsCollection

func newMockMT(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func productDoc(id primitive.ObjectID, name string, price float64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "price", Value: price},
	}
}

// --- Search ---

func TestProductRepository_Search(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("keyword becomes a case-insensitive name pattern", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		id := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(8)}}),
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, productDoc(id, "Desk Lamp", 24.5)),
		)

		products, count, err := repo.Search(context.Background(), "lamp", 6)
		require.NoError(mt, err)
		assert.Equal(mt, int64(8), count)
		require.Len(mt, products, 1)
		assert.Equal(mt, "Desk Lamp", products[0].Name)

		countCmd := mt.GetStartedEvent()
		require.NotNil(mt, countCmd)
		assert.Equal(mt, "aggregate", countCmd.CommandName)

		findCmd := mt.GetStartedEvent()
		require.NotNil(mt, findCmd)
		require.Equal(mt, "find", findCmd.CommandName)
		assert.Equal(mt, "lamp", findCmd.Command.Lookup("filter", "name", "$regex").StringValue())
		assert.Equal(mt, "i", findCmd.Command.Lookup("filter", "name", "$options").StringValue())

		limit, ok := findCmd.Command.Lookup("limit").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(6), limit)
	})

	mt.Run("empty keyword imposes no restriction", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(0)}}),
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch),
		)

		_, _, err := repo.Search(context.Background(), "", 6)
		require.NoError(mt, err)

		mt.GetStartedEvent() // the count
		findCmd := mt.GetStartedEvent()
		require.NotNil(mt, findCmd)

		filter, ok := findCmd.Command.Lookup("filter").DocumentOK()
		require.True(mt, ok)
		elems, err := filter.Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})
}

// --- Filter ---

func TestProductRepository_Filter(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("price bounds are inclusive and categories use $in", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		catID := primitive.NewObjectID()
		min, max := 10.0, 50.0

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		_, err := repo.Filter(context.Background(), repository.ProductFilter{
			CategoryIDs: []primitive.ObjectID{catID},
			MinPrice:    &min,
			MaxPrice:    &max,
		})
		require.NoError(mt, err)

		cmd := mt.GetStartedEvent()
		require.NotNil(mt, cmd)
		require.Equal(mt, "find", cmd.CommandName)

		assert.Equal(mt, 10.0, cmd.Command.Lookup("filter", "price", "$gte").Double())
		assert.Equal(mt, 50.0, cmd.Command.Lookup("filter", "price", "$lte").Double())

		in, ok := cmd.Command.Lookup("filter", "category", "$in").ArrayOK()
		require.True(mt, ok)
		vals, err := in.Values()
		require.NoError(mt, err)
		require.Len(mt, vals, 1)
		assert.Equal(mt, catID, vals[0].ObjectID())
	})

	mt.Run("absent criteria impose no restriction", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		_, err := repo.Filter(context.Background(), repository.ProductFilter{})
		require.NoError(mt, err)

		cmd := mt.GetStartedEvent()
		require.NotNil(mt, cmd)

		filter, ok := cmd.Command.Lookup("filter").DocumentOK()
		require.True(mt, ok)
		elems, err := filter.Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})
}

// --- Ranked listings ---

func TestProductRepository_Listings_SortAndLimit(t *testing.T) {
	mt := newMockMT(t)

	tests := []struct {
		name      string
		call      func(r *ProductRepository) error
		sortField string
		limit     int64
	}{
		{
			name: "newest sorts by creation time descending",
			call: func(r *ProductRepository) error {
				_, err := r.ListNewest(context.Background(), 12)
				return err
			},
			sortField: "created_at",
			limit:     12,
		},
		{
			name: "top rated sorts by rating descending",
			call: func(r *ProductRepository) error {
				_, err := r.ListTopRated(context.Background(), 4)
				return err
			},
			sortField: "rating",
			limit:     4,
		},
		{
			name: "latest sorts by identifier descending",
			call: func(r *ProductRepository) error {
				_, err := r.ListLatestByID(context.Background(), 5)
				return err
			},
			sortField: "_id",
			limit:     5,
		},
	}

	for _, tt := range tests {
		mt.Run(tt.name, func(mt *mtest.T) {
			repo := NewProductRepository(mt.DB)
			mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

			require.NoError(mt, tt.call(repo))

			cmd := mt.GetStartedEvent()
			require.NotNil(mt, cmd)
			require.Equal(mt, "find", cmd.CommandName)

			sort, ok := cmd.Command.Lookup("sort", tt.sortField).AsInt64OK()
			require.True(mt, ok)
			assert.Equal(mt, int64(-1), sort)

			limit, ok := cmd.Command.Lookup("limit").AsInt64OK()
			require.True(mt, ok)
			assert.Equal(mt, tt.limit, limit)
		})
	}
}

// --- Lookup and write paths ---

func TestProductRepository_GetByID(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("found", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch,
			productDoc(id, "Desk Lamp", 24.5)))

		product, err := repo.GetByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, product.ID)
		assert.Equal(mt, "Desk Lamp", product.Name)
	})

	mt.Run("missing document maps to not found", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		require.Error(mt, err)
		assert.Equal(mt, 404, apperrors.HTTPStatus(err))
		assert.True(mt, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestProductRepository_Create_WriteErrorReachesClientVerbatim(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("duplicate key", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := repo.Create(context.Background(), &domain.Product{Name: "Desk Lamp"})
		require.Error(mt, err)

		// The client-facing message is the driver's own text, with the
		// wrapping context stripped.
		appErr := apperrors.Store(err)
		assert.Contains(mt, appErr.Message, "E11000 duplicate key error")
		assert.NotContains(mt, appErr.Message, "insert product")
	})
}

func TestProductRepository_SaveReviews_UnmatchedProduct(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("zero matched count maps to not found", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(0)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		err := repo.SaveReviews(context.Background(), &domain.Product{ID: primitive.NewObjectID()})
		require.Error(mt, err)
		assert.Equal(mt, 404, apperrors.HTTPStatus(err))
	})
}
