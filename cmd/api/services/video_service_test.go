package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revana/aggregate"
	"revana/cache"
	"revana/cmd/api/clients/youtubeclient"
	"revana/cmd/api/dto"
	"revana/eventbus"
	"revana/models"
	"revana/repositories"
	"revana/sentiment"
	"revana/summarizer"
)

// ---- fakes ----

type fakeVideoPlatform struct {
	comments     []youtubeclient.RawComment
	commentsErr  error
	listCalls    int
	video        youtubeclient.VideoSummary
	videoErr     error
	searchHits   []youtubeclient.VideoSummary
	searchErr    error
	searchCalls  int
}

func (f *fakeVideoPlatform) ListComments(context.Context, string) ([]youtubeclient.RawComment, error) {
	f.listCalls++
	return f.comments, f.commentsErr
}

func (f *fakeVideoPlatform) GetVideo(context.Context, string) (youtubeclient.VideoSummary, error) {
	return f.video, f.videoErr
}

func (f *fakeVideoPlatform) Search(context.Context, string) ([]youtubeclient.VideoSummary, error) {
	f.searchCalls++
	return f.searchHits, f.searchErr
}

type fakeVideoStore struct {
	stored      []models.StoredComment
	listErr     error
	resolved    []string
	appended    []models.StoredComment
	appendErr   error
}

func (f *fakeVideoStore) ResolveOrCreate(_ context.Context, videoID string, _ repositories.SubjectDefaults) (*models.Video, error) {
	f.resolved = append(f.resolved, videoID)
	return &models.Video{VideoID: videoID}, nil
}

func (f *fakeVideoStore) AppendComment(_ context.Context, _, userEmail, text string) (*models.StoredComment, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	c := models.StoredComment{UserEmail: userEmail, Text: text, CreatedAt: time.Now()}
	f.appended = append(f.appended, c)
	return &c, nil
}

func (f *fakeVideoStore) ListComments(context.Context, string, string) ([]models.StoredComment, error) {
	return f.stored, f.listErr
}

type fakeDirectory struct {
	users map[string]*models.User
}

func (f *fakeDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

// positiveClassifier labels everything positive.
type positiveClassifier struct {
	calls int
	texts []string
	err   error
}

func (c *positiveClassifier) Classify(_ context.Context, texts []string) ([]sentiment.Scored, error) {
	c.calls++
	c.texts = texts
	if c.err != nil {
		return nil, c.err
	}
	out := make([]sentiment.Scored, len(texts))
	for i, t := range texts {
		out[i] = sentiment.Scored{Text: t, Label: sentiment.Positive}
	}
	return out, nil
}

type staticSummarizer struct{}

func (staticSummarizer) Generate(context.Context, []string, []string) summarizer.Pair {
	return summarizer.Pair{Positive: "pos", Negative: "neg"}
}

type captureBus struct {
	topics []string
}

func (b *captureBus) Publish(_ context.Context, topic string, _ eventbus.Event) error {
	b.topics = append(b.topics, topic)
	return nil
}
func (b *captureBus) Close() {}

func newVideoService(platform *fakeVideoPlatform, store *fakeVideoStore, bus eventbus.EventBus) (*VideoService, *positiveClassifier) {
	cls := &positiveClassifier{}
	if bus == nil {
		bus = eventbus.NopBus{}
	}
	svc := NewVideoService(
		platform,
		store,
		&fakeDirectory{users: map[string]*models.User{
			"me@example.com": {Email: "me@example.com", Username: "Me", Picture: "pic"},
		}},
		cls,
		staticSummarizer{},
		cache.New[dto.AnalysisResponseDTO](time.Minute),
		cache.New[[]dto.SearchResultDTO](time.Minute),
		bus,
	)
	return svc, cls
}

const testVideoID = "dQw4w9WgXcQ"

// ---- GetComments ----

func TestGetCommentsFiltersAndMerges(t *testing.T) {
	platform := &fakeVideoPlatform{comments: []youtubeclient.RawComment{
		{Author: "a", Text: "😀"},
		{Author: "b", Text: "10:32"},
		{Author: "c", Text: "Great video!"},
	}}
	store := &fakeVideoStore{stored: []models.StoredComment{
		{UserEmail: "me@example.com", Text: "my take"},
	}}
	svc, cls := newVideoService(platform, store, nil)

	res, err := svc.GetComments(context.Background(), testVideoID, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"Great video!"}, cls.texts, "low-signal comments never reach the classifier")
	require.Len(t, res.Comments, 2)
	assert.Equal(t, "Me", res.Comments[0].Author, "stored author resolved through the directory")
	assert.Equal(t, string(aggregate.SourceStored), res.Comments[0].Source)
	assert.Equal(t, "Great video!", res.Comments[1].Text)
	assert.Equal(t, 2, res.Tally.Positive+res.Tally.Neutral+res.Tally.Negative)
}

func TestGetCommentsMemoizesPerSubject(t *testing.T) {
	platform := &fakeVideoPlatform{comments: []youtubeclient.RawComment{{Author: "a", Text: "nice"}}}
	svc, cls := newVideoService(platform, &fakeVideoStore{}, nil)

	_, err := svc.GetComments(context.Background(), testVideoID, "")
	require.NoError(t, err)
	_, err = svc.GetComments(context.Background(), testVideoID, "")
	require.NoError(t, err)

	assert.Equal(t, 1, platform.listCalls, "second call must be served from cache")
	assert.Equal(t, 1, cls.calls)
}

func TestGetCommentsAcceptsWatchURL(t *testing.T) {
	platform := &fakeVideoPlatform{}
	svc, _ := newVideoService(platform, &fakeVideoStore{}, nil)

	_, err := svc.GetComments(context.Background(), "https://www.youtube.com/watch?v="+testVideoID, "")

	assert.NoError(t, err)
}

func TestGetCommentsInvalidID(t *testing.T) {
	svc, _ := newVideoService(&fakeVideoPlatform{}, &fakeVideoStore{}, nil)

	_, err := svc.GetComments(context.Background(), "not a video", "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCommentsUnknownVideo(t *testing.T) {
	platform := &fakeVideoPlatform{commentsErr: &youtubeclient.HTTPError{StatusCode: http.StatusNotFound}}
	svc, _ := newVideoService(platform, &fakeVideoStore{}, nil)

	_, err := svc.GetComments(context.Background(), testVideoID, "")

	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestGetCommentsDegradesOnStoreFailure(t *testing.T) {
	platform := &fakeVideoPlatform{comments: []youtubeclient.RawComment{{Author: "a", Text: "nice"}}}
	store := &fakeVideoStore{listErr: errors.New("mongo down")}
	svc, _ := newVideoService(platform, store, nil)

	res, err := svc.GetComments(context.Background(), testVideoID, "")

	require.NoError(t, err)
	require.Len(t, res.Comments, 1)
	assert.Equal(t, string(aggregate.SourcePlatform), res.Comments[0].Source)
}

func TestGetCommentsPublishesAnalysisEvent(t *testing.T) {
	bus := &captureBus{}
	platform := &fakeVideoPlatform{}
	svc, _ := newVideoService(platform, &fakeVideoStore{}, bus)

	_, err := svc.GetComments(context.Background(), testVideoID, "")

	require.NoError(t, err)
	assert.Equal(t, []string{eventbus.TopicAnalysisCompleted}, bus.topics)
}

// ---- AddComment ----

func TestAddCommentResolvesSubjectFirst(t *testing.T) {
	bus := &captureBus{}
	store := &fakeVideoStore{}
	platform := &fakeVideoPlatform{video: youtubeclient.VideoSummary{VideoID: testVideoID, Title: "T"}}
	svc, _ := newVideoService(platform, store, bus)

	stored, err := svc.AddComment(context.Background(), testVideoID, "me@example.com", "my comment")

	require.NoError(t, err)
	assert.Equal(t, []string{testVideoID}, store.resolved)
	assert.Equal(t, "my comment", stored.Text)
	assert.Equal(t, []string{eventbus.TopicCommentCreated}, bus.topics)
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	svc, _ := newVideoService(&fakeVideoPlatform{}, &fakeVideoStore{}, nil)

	_, err := svc.AddComment(context.Background(), testVideoID, "me@example.com", "   ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddCommentToleratesMetadataFailure(t *testing.T) {
	platform := &fakeVideoPlatform{videoErr: errors.New("quota exceeded")}
	store := &fakeVideoStore{}
	svc, _ := newVideoService(platform, store, nil)

	_, err := svc.AddComment(context.Background(), testVideoID, "me@example.com", "still works")

	assert.NoError(t, err, "metadata lookup is best-effort")
	assert.Len(t, store.appended, 1)
}

// ---- Search ----

func TestSearchMemoizesPerQuery(t *testing.T) {
	platform := &fakeVideoPlatform{searchHits: []youtubeclient.VideoSummary{
		{VideoID: testVideoID, Title: "hit"},
	}}
	svc, _ := newVideoService(platform, &fakeVideoStore{}, nil)

	first, err := svc.Search(context.Background(), "go tutorials")
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "go tutorials")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, platform.searchCalls)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc, _ := newVideoService(&fakeVideoPlatform{}, &fakeVideoStore{}, nil)

	_, err := svc.Search(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// ---- GetDetail ----

func TestGetDetailUnknownVideo(t *testing.T) {
	platform := &fakeVideoPlatform{videoErr: &youtubeclient.HTTPError{StatusCode: http.StatusNotFound}}
	svc, _ := newVideoService(platform, &fakeVideoStore{}, nil)

	_, err := svc.GetDetail(context.Background(), testVideoID)

	assert.ErrorIs(t, err, ErrSubjectNotFound)
}
