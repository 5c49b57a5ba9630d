package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meshram0823/UrbanCart/internal/domain"
	pkgkafka "github.com/meshram0823/UrbanCart/pkg/kafka"
)

// Kafka topics for catalog domain events.
const (
	TopicProductCreated = "urbancart.product.created"
	TopicProductUpdated = "urbancart.product.updated"
	TopicProductDeleted = "urbancart.product.deleted"
	TopicReviewAdded    = "urbancart.product.review_added"
)

// Aggregate type constant.
const AggregateTypeProduct = "product"

// Source identifier for events originating from the catalog service.
const SourceCatalogService = "catalog-service"

// ProductData is the payload for product.created and product.updated events.
type ProductData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Rating      float64 `json:"rating"`
	NumReviews  int     `json:"num_reviews"`
}

// ProductDeletedData is the payload for a product.deleted event.
type ProductDeletedData struct {
	ID string `json:"id"`
}

// ReviewAddedData is the payload for a review_added event.
type ReviewAddedData struct {
	ProductID  string  `json:"product_id"`
	UserID     string  `json:"user_id"`
	Rating     int     `json:"rating"`
	NewRating  float64 `json:"new_rating"`
	NumReviews int     `json:"num_reviews"`
}

// Producer publishes catalog domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the catalog service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

func productData(p *domain.Product) ProductData {
	return ProductData{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Price:       p.Price,
		Category:    p.Category.Hex(),
		Quantity:    p.Quantity,
		Rating:      p.Rating,
		NumReviews:  p.NumReviews,
	}
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	return p.publish(ctx, TopicProductCreated, product.ID.Hex(), productData(product))
}

// PublishProductUpdated publishes a product.updated event.
func (p *Producer) PublishProductUpdated(ctx context.Context, product *domain.Product) error {
	return p.publish(ctx, TopicProductUpdated, product.ID.Hex(), productData(product))
}

// PublishProductDeleted publishes a product.deleted event.
func (p *Producer) PublishProductDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, TopicProductDeleted, id, ProductDeletedData{ID: id})
}

// PublishReviewAdded publishes a review_added event carrying the recomputed
// aggregates.
func (p *Producer) PublishReviewAdded(ctx context.Context, product *domain.Product, review *domain.Review) error {
	data := ReviewAddedData{
		ProductID:  product.ID.Hex(),
		UserID:     review.User.Hex(),
		Rating:     review.Rating,
		NewRating:  product.Rating,
		NumReviews: product.NumReviews,
	}
	return p.publish(ctx, TopicReviewAdded, product.ID.Hex(), data)
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, AggregateTypeProduct, SourceCatalogService, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published catalog event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)

	return nil
}
