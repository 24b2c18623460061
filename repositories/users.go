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

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find", Key: email, Err: err}
	}
	return &u, nil
}

// UpsertByEmail creates the user on first sign-in and refreshes the
// mutable profile attributes afterwards.
func (r *UserRepository) UpsertByEmail(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now()
	picture := u.Picture
	if picture == "" {
		picture = models.DefaultAvatarURL
	}
	filter := bson.M{"email": u.Email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
			"email":      u.Email,
		},
		"$set": bson.M{
			"updated_at": now,
			"username":   u.Username,
			"picture":    picture,
			"provider":   u.Provider,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, &PersistenceError{Op: "upsert", Key: u.Email, Err: err}
	}
	return &out, nil
}
