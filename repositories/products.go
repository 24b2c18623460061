package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"revana/models"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// ResolveOrCreate returns the product record for asin, creating it with
// the given defaults when absent. Same upsert contract as
// VideoRepository.ResolveOrCreate.
func (r *ProductRepository) ResolveOrCreate(ctx context.Context, asin string, defaults SubjectDefaults) (*models.Product, error) {
	if asin == "" {
		return nil, &PersistenceError{Op: "resolve", Key: asin, Err: errors.New("empty asin")}
	}

	name := defaults.Title
	if name == "" {
		name = "Unnamed product"
	}

	now := time.Now()
	filter := bson.M{"asin": asin}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
			"asin":       asin,
			"name":       name,
			"image_url":  defaults.ThumbnailURL,
			"reviews":    []models.StoredReview{},
		},
		"$set": bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var p models.Product
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p); err != nil {
		return nil, &PersistenceError{Op: "resolve", Key: asin, Err: err}
	}
	return &p, nil
}

func (r *ProductRepository) FindByASIN(ctx context.Context, asin string) (*models.Product, error) {
	var p models.Product
	err := r.col.FindOne(ctx, bson.M{"asin": asin}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find", Key: asin, Err: err}
	}
	return &p, nil
}

// AppendReview appends a timestamped review to the product's review list.
func (r *ProductRepository) AppendReview(ctx context.Context, asin, userEmail, text string, rating int) (*models.StoredReview, error) {
	rev := models.StoredReview{
		UserEmail: userEmail,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"asin": asin},
		bson.M{
			"$push": bson.M{"reviews": rev},
			"$set":  bson.M{"updated_at": rev.CreatedAt},
		},
	)
	if err != nil {
		return nil, &PersistenceError{Op: "append", Key: asin, Err: err}
	}
	if res.MatchedCount == 0 {
		return nil, &PersistenceError{Op: "append", Key: asin, Err: ErrNotFound}
	}
	return &rev, nil
}

// ListReviews returns the stored reviews for asin, newest last.
func (r *ProductRepository) ListReviews(ctx context.Context, asin string) ([]models.StoredReview, error) {
	p, err := r.FindByASIN(ctx, asin)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p.Reviews, nil
}
