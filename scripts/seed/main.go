// Package main implements a standalone seed script that populates the
// catalog database with realistic test data: a fixed category set and a
// generated product range with reviews, so listing, ranking, and filter
// endpoints have something to chew on locally.
//
// Run: go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meshram0823/UrbanCart/internal/domain"
)

const productsPerCategory = 40

// --------------------------------------------------------------------------
// Configuration helpers
// --------------------------------------------------------------------------

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// --------------------------------------------------------------------------
// Seed data definitions
// --------------------------------------------------------------------------

var categoryNames = []string{
	"Electronics", "Books", "Home & Kitchen", "Sports", "Toys",
}

var brandsByCategory = map[string][]string{
	"Electronics":    {"Keychron", "Anker", "Logitech", "Sony"},
	"Books":          {"Penguin", "O'Reilly", "Vintage"},
	"Home & Kitchen": {"Lumio", "OXO", "Brita"},
	"Sports":         {"Wilson", "Adidas", "Decathlon"},
	"Toys":           {"LEGO", "Ravensburger", "Hasbro"},
}

var adjectives = []string{
	"Compact", "Premium", "Classic", "Portable", "Wireless",
	"Ergonomic", "Foldable", "Deluxe", "Essential", "Pro",
}

var nouns = []string{
	"Keyboard", "Lamp", "Backpack", "Bottle", "Charger",
	"Speaker", "Notebook", "Mat", "Stand", "Organizer",
}

var comments = []string{
	"Exactly as described, very happy with it.",
	"Decent for the price, shipping was quick.",
	"Build quality could be better.",
	"Bought a second one as a gift.",
	"Works fine, nothing spectacular.",
}

// --------------------------------------------------------------------------
// Seeding
// --------------------------------------------------------------------------

func main() {
	uri := getEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := getEnv("MONGO_DB", "urbancart")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(dbName)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	categories, err := seedCategories(ctx, db)
	if err != nil {
		log.Fatalf("seed categories: %v", err)
	}
	log.Printf("seeded %d categories", len(categories))

	total, err := seedProducts(ctx, db, rng, categories)
	if err != nil {
		log.Fatalf("seed products: %v", err)
	}
	log.Printf("seeded %d products", total)
}

func seedCategories(ctx context.Context, db *mongo.Database) (map[string]primitive.ObjectID, error) {
	coll := db.Collection("categories")
	now := time.Now().UTC()

	ids := make(map[string]primitive.ObjectID, len(categoryNames))
	for _, name := range categoryNames {
		// Re-running the script must not duplicate categories.
		var existing domain.Category
		err := coll.FindOne(ctx, bson.M{"name": name}).Decode(&existing)
		if err == nil {
			ids[name] = existing.ID
			continue
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("lookup category %q: %w", name, err)
		}

		category := domain.Category{
			ID:        primitive.NewObjectID(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := coll.InsertOne(ctx, category); err != nil {
			return nil, fmt.Errorf("insert category %q: %w", name, err)
		}
		ids[name] = category.ID
	}
	return ids, nil
}

func seedProducts(ctx context.Context, db *mongo.Database, rng *rand.Rand, categories map[string]primitive.ObjectID) (int, error) {
	coll := db.Collection("products")

	total := 0
	for name, catID := range categories {
		docs := make([]any, 0, productsPerCategory)
		for i := 0; i < productsPerCategory; i++ {
			docs = append(docs, randomProduct(rng, name, catID))
		}

		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return total, fmt.Errorf("insert products for %q: %w", name, err)
		}
		total += len(docs)
	}
	return total, nil
}

func randomProduct(rng *rand.Rand, categoryName string, categoryID primitive.ObjectID) domain.Product {
	brands := brandsByCategory[categoryName]
	name := adjectives[rng.Intn(len(adjectives))] + " " + nouns[rng.Intn(len(nouns))]

	// Spread creation times over the past year so newest-first listings vary.
	createdAt := time.Now().UTC().Add(-time.Duration(rng.Intn(365*24)) * time.Hour)

	p := domain.Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: fmt.Sprintf("%s for the %s section.", name, categoryName),
		Brand:       brands[rng.Intn(len(brands))],
		Price:       float64(rng.Intn(19000)+999) / 100,
		Category:    categoryID,
		Quantity:    rng.Intn(200) + 1,
		Reviews:     []domain.Review{},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	for i := 0; i < rng.Intn(6); i++ {
		p.AddReview(domain.Review{
			ID:        primitive.NewObjectID(),
			User:      primitive.NewObjectID(),
			Name:      fmt.Sprintf("shopper-%d", rng.Intn(1000)),
			Rating:    rng.Intn(5) + 1,
			Comment:   comments[rng.Intn(len(comments))],
			CreatedAt: createdAt.Add(time.Duration(i+1) * 24 * time.Hour),
		})
	}

	return p
}
