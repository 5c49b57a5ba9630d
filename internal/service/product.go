package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meshram0823/UrbanCart/internal/domain"
	"github.com/meshram0823/UrbanCart/internal/repository"
	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

// EventPublisher publishes catalog domain events. Publishing is best-effort:
// failures are logged, never surfaced to the caller.
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, product *domain.Product) error
	PublishProductUpdated(ctx context.Context, product *domain.Product) error
	PublishProductDeleted(ctx context.Context, id string) error
	PublishReviewAdded(ctx context.Context, product *domain.Product, review *domain.Review) error
}

// Listing limits. PageSize is fixed: the keyword listing always reports
// page 1 regardless of the matching count, a long-standing client contract
// that must not change without a coordinated storefront release.
const (
	PageSize     = 6
	allListLimit = 12
	topListLimit = 4
	newListLimit = 5
)

// ProductService implements the business logic for catalog operations.
type ProductService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	producer   EventPublisher
	logger     *slog.Logger
	locks      *productLocks
}

// NewProductService creates a new product service.
func NewProductService(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	producer EventPublisher,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		producer:   producer,
		logger:     logger,
		locks:      newProductLocks(),
	}
}

// ProductInput holds the caller-supplied fields for creating or updating a
// product. Every field is required and must be non-falsy: empty strings and
// numeric zeroes are both rejected, by design.
type ProductInput struct {
	Name        string
	Description string
	Brand       string
	Price       float64
	Category    string
	Quantity    int
}

// ProductPage is the keyword listing result.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	HasMore  bool             `json:"hasMore"`
}

func (s *ProductService) validateInput(input *ProductInput) (primitive.ObjectID, error) {
	if input.Name == "" || input.Description == "" || input.Brand == "" ||
		input.Category == "" || input.Price == 0 || input.Quantity == 0 {
		return primitive.NilObjectID, apperrors.InvalidInput("All fields are required")
	}

	categoryID, err := primitive.ObjectIDFromHex(input.Category)
	if err != nil {
		return primitive.NilObjectID, apperrors.InvalidInput("Invalid category ID")
	}

	return categoryID, nil
}

// CreateProduct validates the input and inserts a new product. A fresh
// product starts with no reviews: NumReviews and Rating are both zero.
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*domain.Product, error) {
	categoryID, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Brand:       input.Brand,
		Price:       input.Price,
		Category:    categoryID,
		Quantity:    input.Quantity,
		Reviews:     []domain.Review{},
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apperrors.Store(err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		// Event publishing is best-effort; the write has already succeeded.
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("product_id", product.ID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.Hex()),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct validates the input and replaces the caller-supplied fields
// of the product, returning the post-update document.
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, input *ProductInput) (*domain.Product, error) {
	categoryID, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Brand:       input.Brand,
		Price:       input.Price,
		Category:    categoryID,
		Quantity:    input.Quantity,
	}

	updated, err := s.repo.Update(ctx, id, product)
	if err != nil {
		if apperrors.HTTPStatus(err) != 500 {
			return nil, err
		}
		return nil, apperrors.Store(err)
	}

	if err := s.producer.PublishProductUpdated(ctx, updated); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated event",
			slog.String("product_id", updated.ID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", updated.ID.Hex()),
	)

	return updated, nil
}

// DeleteProduct removes a product; its embedded reviews cascade with it.
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishProductDeleted(ctx, id.Hex()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.String("product_id", id.Hex()),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id.Hex()),
	)

	return nil
}

// GetProduct retrieves a product by its identifier.
func (s *ProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// ListProducts returns one page of products matched by keyword. The page
// number is always reported as 1; Pages and HasMore describe the full
// matching count.
func (s *ProductService) ListProducts(ctx context.Context, keyword string) (*ProductPage, error) {
	products, count, err := s.repo.Search(ctx, keyword, PageSize)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Page:     1,
		Pages:    int(math.Ceil(float64(count) / float64(PageSize))),
		HasMore:  count > PageSize,
	}, nil
}

// ListAll returns the newest products (up to 12) with their category
// references resolved. A category that fails to load is left nil rather
// than failing the listing.
func (s *ProductService) ListAll(ctx context.Context) ([]domain.ProductWithCategory, error) {
	products, err := s.repo.ListNewest(ctx, allListLimit)
	if err != nil {
		return nil, fmt.Errorf("list newest products: %w", err)
	}

	cache := make(map[primitive.ObjectID]*domain.Category)
	items := make([]domain.ProductWithCategory, len(products))

	for i, p := range products {
		items[i] = domain.ProductWithCategory{Product: p}

		category, ok := cache[p.Category]
		if !ok {
			category, err = s.categories.GetByID(ctx, p.Category)
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to resolve product category",
					slog.String("product_id", p.ID.Hex()),
					slog.String("category_id", p.Category.Hex()),
					slog.String("error", err.Error()),
				)
				category = nil
			}
			cache[p.Category] = category
		}
		items[i].Category = category
	}

	return items, nil
}

// ListTop returns the highest-rated products (up to 4).
func (s *ProductService) ListTop(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListTopRated(ctx, topListLimit)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return products, nil
}

// ListNew returns the most recently inserted products (up to 5), ordered by
// identifier descending.
func (s *ProductService) ListNew(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListLatestByID(ctx, newListLimit)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return products, nil
}

// FilterProducts returns all products matching the optional category set and
// price range. An empty category set imposes no restriction; a price range
// that is not exactly a [min, max] pair is ignored entirely.
func (s *ProductService) FilterProducts(ctx context.Context, checked []string, radio []float64) ([]domain.Product, error) {
	filter := repository.ProductFilter{}

	for _, raw := range checked {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("parse category id %q: %w", raw, err)
		}
		filter.CategoryIDs = append(filter.CategoryIDs, id)
	}

	if len(radio) == 2 {
		filter.MinPrice = &radio[0]
		filter.MaxPrice = &radio[1]
	}

	products, err := s.repo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("filter products: %w", err)
	}

	return products, nil
}
