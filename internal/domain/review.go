package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a product review embedded in its parent product document.
// A review is immutable once created; at most one review exists per
// (product, user) pair. Name is the reviewer's display name captured at
// review time, not re-derived later.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Name      string             `json:"name" bson:"name"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}
