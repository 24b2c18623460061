package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"revana/sentiment"
)

// Video represents a YouTube subject record with its locally submitted
// comments. At most one document exists per canonical video_id; resolution
// is an exact-match lookup on that key (the legacy system matched by URL
// containment, which could resolve the wrong subject).
// Collection: videos
type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	VideoID      string             `bson:"video_id" json:"video_id"`
	Title        string             `bson:"title" json:"title"`
	Channel      string             `bson:"channel" json:"channel"`
	ThumbnailURL string             `bson:"thumbnail_url" json:"thumbnail_url"`
	Comments     []StoredComment    `bson:"comments" json:"comments"`
}

// StoredComment is a locally persisted comment embedded in its subject
// document. The pipeline reads these back on every aggregation but never
// deletes or edits them.
type StoredComment struct {
	UserEmail string          `bson:"user_email" json:"user_email"`
	Text      string          `bson:"text" json:"text"`
	Sentiment sentiment.Label `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// EffectiveSentiment returns the persisted label, defaulting to neutral.
// Stored comments are never sent through the classifier; locally authored
// text is trusted as-is.
func (c StoredComment) EffectiveSentiment() sentiment.Label {
	if c.Sentiment.Valid() {
		return c.Sentiment
	}
	return sentiment.Neutral
}
