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

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection("videos")}
}

// SubjectDefaults carries caller-supplied attributes used when a subject
// record is created lazily on first resolution.
type SubjectDefaults struct {
	Title        string
	Channel      string
	ThumbnailURL string
}

// ResolveOrCreate returns the subject record for videoID, creating it with
// the given defaults when absent. The lookup is an exact match on the
// canonical id and creation is a $setOnInsert upsert, so concurrent
// resolve-or-create races for the same id converge on one document.
func (r *VideoRepository) ResolveOrCreate(ctx context.Context, videoID string, defaults SubjectDefaults) (*models.Video, error) {
	if videoID == "" {
		return nil, &PersistenceError{Op: "resolve", Key: videoID, Err: errors.New("empty video id")}
	}

	title := defaults.Title
	if title == "" {
		title = "Untitled video"
	}
	thumbnail := defaults.ThumbnailURL
	if thumbnail == "" {
		thumbnail = "https://img.youtube.com/vi/" + videoID + "/default.jpg"
	}

	now := time.Now()
	filter := bson.M{"video_id": videoID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at":    now,
			"video_id":      videoID,
			"title":         title,
			"channel":       defaults.Channel,
			"thumbnail_url": thumbnail,
			"comments":      []models.StoredComment{},
		},
		"$set": bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var v models.Video
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&v); err != nil {
		return nil, &PersistenceError{Op: "resolve", Key: videoID, Err: err}
	}
	return &v, nil
}

// FindByVideoID returns the subject record without creating it.
func (r *VideoRepository) FindByVideoID(ctx context.Context, videoID string) (*models.Video, error) {
	var v models.Video
	err := r.col.FindOne(ctx, bson.M{"video_id": videoID}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find", Key: videoID, Err: err}
	}
	return &v, nil
}

// AppendComment appends a timestamped comment to the subject's comment
// list. The subject must already be resolved; a missing subject or a
// failed write is a PersistenceError.
func (r *VideoRepository) AppendComment(ctx context.Context, videoID, userEmail, text string) (*models.StoredComment, error) {
	c := models.StoredComment{
		UserEmail: userEmail,
		Text:      text,
		CreatedAt: time.Now(),
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"video_id": videoID},
		bson.M{
			"$push": bson.M{"comments": c},
			"$set":  bson.M{"updated_at": c.CreatedAt},
		},
	)
	if err != nil {
		return nil, &PersistenceError{Op: "append", Key: videoID, Err: err}
	}
	if res.MatchedCount == 0 {
		return nil, &PersistenceError{Op: "append", Key: videoID, Err: ErrNotFound}
	}
	return &c, nil
}

// ListComments returns the stored comments for videoID, newest last.
// emailFilter, when non-empty, restricts results to that author.
func (r *VideoRepository) ListComments(ctx context.Context, videoID, emailFilter string) ([]models.StoredComment, error) {
	v, err := r.FindByVideoID(ctx, videoID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if emailFilter == "" {
		return v.Comments, nil
	}
	out := make([]models.StoredComment, 0, len(v.Comments))
	for _, c := range v.Comments {
		if c.UserEmail == emailFilter {
			out = append(out, c)
		}
	}
	return out, nil
}
