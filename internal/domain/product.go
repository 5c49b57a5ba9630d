package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product document in the catalog.
//
// Two invariants hold after every mutation that touches Reviews:
// NumReviews == len(Reviews), and Rating is the arithmetic mean of all
// review ratings (0 when there are none). Mutate reviews only through
// AddReview so the aggregates stay consistent.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Brand       string             `json:"brand" bson:"brand"`
	Price       float64            `json:"price" bson:"price"`
	Category    primitive.ObjectID `json:"category" bson:"category"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Reviews     []Review           `json:"reviews" bson:"reviews"`
	NumReviews  int                `json:"numReviews" bson:"num_reviews"`
	Rating      float64            `json:"rating" bson:"rating"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ProductWithCategory is a product with its category reference resolved.
// The embedded Category ObjectID is shadowed by the expanded entity.
type ProductWithCategory struct {
	Product
	Category *Category `json:"category"`
}

// ReviewedBy reports whether the given user has already reviewed the product.
func (p *Product) ReviewedBy(userID primitive.ObjectID) bool {
	for i := range p.Reviews {
		if p.Reviews[i].User == userID {
			return true
		}
	}
	return false
}

// AddReview appends a review and recomputes the aggregate fields.
func (p *Product) AddReview(r Review) {
	p.Reviews = append(p.Reviews, r)
	p.recomputeRating()
}

// recomputeRating restores the review aggregate invariants.
func (p *Product) recomputeRating() {
	p.NumReviews = len(p.Reviews)
	if p.NumReviews == 0 {
		p.Rating = 0
		return
	}

	var sum float64
	for i := range p.Reviews {
		sum += float64(p.Reviews[i].Rating)
	}
	p.Rating = sum / float64(p.NumReviews)
}
