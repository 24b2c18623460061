package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"revana/sentiment"
)

// Product represents a retail subject record with its locally submitted
// reviews. At most one document exists per ASIN.
// Collection: products
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	ASIN      string             `bson:"asin" json:"asin"`
	Name      string             `bson:"name" json:"name"`
	ImageURL  string             `bson:"image_url" json:"image_url"`
	Reviews   []StoredReview     `bson:"reviews" json:"reviews"`
}

// StoredReview is a locally persisted review embedded in its product
// document. Rating is a 1..5 star value; it feeds the unfavorable-group
// fallback when the classifier finds no negative platform reviews.
type StoredReview struct {
	UserEmail string          `bson:"user_email" json:"user_email"`
	Text      string          `bson:"text" json:"text"`
	Rating    int             `bson:"rating" json:"rating"`
	Sentiment sentiment.Label `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

func (r StoredReview) EffectiveSentiment() sentiment.Label {
	if r.Sentiment.Valid() {
		return r.Sentiment
	}
	return sentiment.Neutral
}
