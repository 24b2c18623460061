package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revana/cache"
	"revana/cmd/api/clients/amazonclient"
	"revana/cmd/api/dto"
	"revana/eventbus"
	"revana/models"
	"revana/repositories"
)

type fakeProductPlatform struct {
	product     amazonclient.ProductSummary
	productErr  error
	reviews     []amazonclient.RawReview
	reviewsErr  error
	listCalls   int
}

func (f *fakeProductPlatform) GetProduct(context.Context, string) (amazonclient.ProductSummary, error) {
	return f.product, f.productErr
}

func (f *fakeProductPlatform) ListReviews(context.Context, string) ([]amazonclient.RawReview, error) {
	f.listCalls++
	return f.reviews, f.reviewsErr
}

type fakeProductStore struct {
	stored   []models.StoredReview
	resolved []string
	appended []models.StoredReview
}

func (f *fakeProductStore) ResolveOrCreate(_ context.Context, asin string, _ repositories.SubjectDefaults) (*models.Product, error) {
	f.resolved = append(f.resolved, asin)
	return &models.Product{ASIN: asin}, nil
}

func (f *fakeProductStore) AppendReview(_ context.Context, _, userEmail, text string, rating int) (*models.StoredReview, error) {
	r := models.StoredReview{UserEmail: userEmail, Text: text, Rating: rating, CreatedAt: time.Now()}
	f.appended = append(f.appended, r)
	return &r, nil
}

func (f *fakeProductStore) ListReviews(context.Context, string) ([]models.StoredReview, error) {
	return f.stored, nil
}

func newProductService(platform *fakeProductPlatform, store *fakeProductStore, bus eventbus.EventBus) (*ProductService, *positiveClassifier) {
	cls := &positiveClassifier{}
	if bus == nil {
		bus = eventbus.NopBus{}
	}
	svc := NewProductService(
		platform,
		store,
		&fakeDirectory{users: map[string]*models.User{}},
		cls,
		staticSummarizer{},
		cache.New[dto.AnalysisResponseDTO](time.Minute),
		bus,
	)
	return svc, cls
}

const testASIN = "B01DFKC2SO"

func TestGetReviewsMergesAndMemoizes(t *testing.T) {
	platform := &fakeProductPlatform{
		product: amazonclient.ProductSummary{ASIN: testASIN, Name: "Widget"},
		reviews: []amazonclient.RawReview{{Author: "buyer", Text: "works great", Rating: 5}},
	}
	store := &fakeProductStore{stored: []models.StoredReview{
		{UserEmail: "me@example.com", Text: "broke after a week", Rating: 1},
	}}
	svc, cls := newProductService(platform, store, nil)

	res, err := svc.GetReviews(context.Background(), testASIN)

	require.NoError(t, err)
	assert.Equal(t, []string{"works great"}, cls.texts, "stored reviews are never reclassified")
	require.Len(t, res.Comments, 2)
	assert.Equal(t, "broke after a week", res.Comments[0].Text)
	assert.Equal(t, 1, res.Comments[0].Rating)

	_, err = svc.GetReviews(context.Background(), testASIN)
	require.NoError(t, err)
	assert.Equal(t, 1, platform.listCalls, "second call must be served from cache")
}

func TestGetReviewsNormalizesASIN(t *testing.T) {
	platform := &fakeProductPlatform{product: amazonclient.ProductSummary{ASIN: testASIN}}
	svc, _ := newProductService(platform, &fakeProductStore{}, nil)

	_, err := svc.GetReviews(context.Background(), "  b01dfkc2so ")

	assert.NoError(t, err)
}

func TestGetReviewsInvalidASIN(t *testing.T) {
	svc, _ := newProductService(&fakeProductPlatform{}, &fakeProductStore{}, nil)

	_, err := svc.GetReviews(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetReviewsUnknownASIN(t *testing.T) {
	platform := &fakeProductPlatform{productErr: &amazonclient.HTTPError{StatusCode: http.StatusNotFound}}
	store := &fakeProductStore{stored: []models.StoredReview{
		{UserEmail: "me@example.com", Text: "local review exists", Rating: 3},
	}}
	svc, _ := newProductService(platform, store, nil)

	_, err := svc.GetReviews(context.Background(), testASIN)

	assert.ErrorIs(t, err, ErrSubjectNotFound,
		"unknown upstream product is 404 even when local reviews exist")
}

func TestAddReviewValidatesRating(t *testing.T) {
	svc, _ := newProductService(&fakeProductPlatform{}, &fakeProductStore{}, nil)

	_, err := svc.AddReview(context.Background(), testASIN, "me@example.com", "text", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddReview(context.Background(), testASIN, "me@example.com", "text", 6)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddReviewPersistsAndPublishes(t *testing.T) {
	bus := &captureBus{}
	store := &fakeProductStore{}
	platform := &fakeProductPlatform{product: amazonclient.ProductSummary{ASIN: testASIN, Name: "Widget"}}
	svc, _ := newProductService(platform, store, bus)

	stored, err := svc.AddReview(context.Background(), testASIN, "me@example.com", "solid build", 4)

	require.NoError(t, err)
	assert.Equal(t, []string{testASIN}, store.resolved)
	assert.Equal(t, 4, stored.Rating)
	assert.Equal(t, []string{eventbus.TopicCommentCreated}, bus.topics)
}
