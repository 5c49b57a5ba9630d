package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meshram0823/UrbanCart/internal/domain"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

type mockFavouritesRepository struct {
	mock.Mock
}

func (m *mockFavouritesRepository) Get(ctx context.Context, userID string) (domain.Favourites, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Favourites), args.Error(1)
}

func (m *mockFavouritesRepository) Save(ctx context.Context, userID string, list domain.Favourites) error {
	args := m.Called(ctx, userID, list)
	return args.Error(0)
}

func newTestFavouritesService(store *mockFavouritesRepository, products *mockProductRepository) *FavouritesService {
	return NewFavouritesService(store, products, newTestLogger())
}

func TestFavouritesAdd_SnapshotsProduct(t *testing.T) {
	store := new(mockFavouritesRepository)
	products := new(mockProductRepository)
	svc := newTestFavouritesService(store, products)

	productID := primitive.NewObjectID()
	product := &domain.Product{ID: productID, Name: "Desk Lamp", Price: 24.5}

	products.On("GetByID", mock.Anything, productID).Return(product, nil)
	store.On("Get", mock.Anything, "user-1").Return(domain.Favourites{}, nil)
	store.On("Save", mock.Anything, "user-1", mock.MatchedBy(func(list domain.Favourites) bool {
		return len(list) == 1 && list[0].ID == productID && list[0].Price == 24.5
	})).Return(nil)

	list, err := svc.Add(context.Background(), "user-1", productID)

	require.NoError(t, err)
	require.Len(t, list, 1)
	store.AssertExpectations(t)
}

func TestFavouritesAdd_AlreadyPresentSkipsSave(t *testing.T) {
	store := new(mockFavouritesRepository)
	products := new(mockProductRepository)
	svc := newTestFavouritesService(store, products)

	productID := primitive.NewObjectID()
	product := &domain.Product{ID: productID}

	products.On("GetByID", mock.Anything, productID).Return(product, nil)
	store.On("Get", mock.Anything, "user-1").Return(domain.Favourites{*product}, nil)

	list, err := svc.Add(context.Background(), "user-1", productID)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavouritesAdd_ProductNotFound(t *testing.T) {
	store := new(mockFavouritesRepository)
	products := new(mockProductRepository)
	svc := newTestFavouritesService(store, products)

	productID := primitive.NewObjectID()
	products.On("GetByID", mock.Anything, productID).
		Return(nil, apperrors.NotFound("product", productID.Hex()))

	_, err := svc.Add(context.Background(), "user-1", productID)

	require.Error(t, err)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestFavouritesRemove(t *testing.T) {
	store := new(mockFavouritesRepository)
	svc := newTestFavouritesService(store, new(mockProductRepository))

	keep := domain.Product{ID: primitive.NewObjectID()}
	drop := domain.Product{ID: primitive.NewObjectID()}

	store.On("Get", mock.Anything, "user-1").Return(domain.Favourites{keep, drop}, nil)
	store.On("Save", mock.Anything, "user-1", mock.MatchedBy(func(list domain.Favourites) bool {
		return len(list) == 1 && list[0].ID == keep.ID
	})).Return(nil)

	list, err := svc.Remove(context.Background(), "user-1", drop.ID)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	store.AssertExpectations(t)
}

func TestFavouritesRemove_AbsentSkipsSave(t *testing.T) {
	store := new(mockFavouritesRepository)
	svc := newTestFavouritesService(store, new(mockProductRepository))

	store.On("Get", mock.Anything, "user-1").Return(domain.Favourites{}, nil)

	list, err := svc.Remove(context.Background(), "user-1", primitive.NewObjectID())

	require.NoError(t, err)
	assert.Empty(t, list)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavouritesReplace_Verbatim(t *testing.T) {
	store := new(mockFavouritesRepository)
	svc := newTestFavouritesService(store, new(mockProductRepository))

	a := domain.Product{ID: primitive.NewObjectID()}
	b := domain.Product{ID: primitive.NewObjectID()}

	store.On("Save", mock.Anything, "user-1", mock.MatchedBy(func(list domain.Favourites) bool {
		return len(list) == 2 && list[0].ID == b.ID && list[1].ID == a.ID
	})).Return(nil)

	list, err := svc.Replace(context.Background(), "user-1", []domain.Product{b, a})

	require.NoError(t, err)
	assert.Len(t, list, 2)
	store.AssertExpectations(t)
}
