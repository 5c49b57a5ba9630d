package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meshram0823/UrbanCart/internal/domain"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository on MongoDB.
type CategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a MongoDB-backed category repository.
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		collection: db.Collection(categoriesCollection),
	}
}

// Create inserts a new category. Names are unique; a duplicate is reported
// as an already-exists conflict.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": category.Name})
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return apperrors.AlreadyExists("category", "name", category.Name)
	}

	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	var category domain.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Category", id.Hex())
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	return &category, nil
}

// List returns all categories.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]domain.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	return categories, nil
}
