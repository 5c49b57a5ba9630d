package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meshram0823/UrbanCart/internal/domain"
	"github.com/meshram0823/UrbanCart/internal/repository"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

// ProductRepository implements repository.ProductRepository on a MongoDB
// collection of product documents with embedded reviews.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a MongoDB-backed product repository.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection(productsCollection),
	}
}

// Create inserts a new product, assigning its ID and timestamps.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Reviews == nil {
		product.Reviews = []domain.Review{}
	}

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Product", id.Hex())
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	return &product, nil
}

// Search returns up to limit products matching the keyword against the name
// field as a case-insensitive pattern, plus the total matching count.
func (r *ProductRepository) Search(ctx context.Context, keyword string, limit int64) ([]domain.Product, int64, error) {
	filter := bson.M{}
	if keyword != "" {
		filter["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	return products, count, nil
}

// Update replaces the caller-supplied fields and returns the post-update
// document. Reviews and their aggregates are untouched, as are the
// identifier and creation time.
func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) (*domain.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"brand":       product.Brand,
		"price":       product.Price,
		"category":    product.Category,
		"quantity":    product.Quantity,
		"updated_at":  time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Product", id.Hex())
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return &updated, nil
}

// SaveReviews persists the product's reviews together with the recomputed
// aggregate fields in a single write.
func (r *ProductRepository) SaveReviews(ctx context.Context, product *domain.Product) error {
	update := bson.M{"$set": bson.M{
		"reviews":     product.Reviews,
		"num_reviews": product.NumReviews,
		"rating":      product.Rating,
		"updated_at":  time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return fmt.Errorf("save reviews: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Product", product.ID.Hex())
	}

	return nil
}

// Delete removes a product by its identifier. Embedded reviews go with it.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NotFound("Product", id.Hex())
		}
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}

// ListNewest returns up to limit products, newest-first by creation time.
func (r *ProductRepository) ListNewest(ctx context.Context, limit int64) ([]domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	return r.list(ctx, bson.M{}, opts)
}

// ListTopRated returns up to limit products ordered by rating descending.
func (r *ProductRepository) ListTopRated(ctx context.Context, limit int64) ([]domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)
	return r.list(ctx, bson.M{}, opts)
}

// ListLatestByID returns up to limit products ordered by identifier
// descending. ObjectIDs embed their creation timestamp, so this is a proxy
// for insertion order.
func (r *ProductRepository) ListLatestByID(ctx context.Context, limit int64) ([]domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)
	return r.list(ctx, bson.M{}, opts)
}

// Filter returns all products matching the filter, unpaginated.
func (r *ProductRepository) Filter(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}

	if len(filter.CategoryIDs) > 0 {
		query["category"] = bson.M{"$in": filter.CategoryIDs}
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil {
		query["price"] = bson.M{"$gte": *filter.MinPrice, "$lte": *filter.MaxPrice}
	}

	return r.list(ctx, query, options.Find())
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}
