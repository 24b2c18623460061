package sentimentclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revana/config"
	"revana/sentiment"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.SentimentConfig{BaseURL: srv.URL})
}

func TestClassifyPositionalResults(t *testing.T) {
	var gotBody classifyRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/youtube-comments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(classifyResponse{Comments: []scoredComment{
			{Comment: "great video", Sentiment: 2},
			{Comment: "i disliked this", Sentiment: 0},
		}})
	})

	scored, err := c.Classify(context.Background(), []string{"Great video!", "I disliked this"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Great video!", "I disliked this"}, gotBody.Comments)
	require.Len(t, scored, 2)
	assert.Equal(t, sentiment.Scored{Text: "great video", Label: sentiment.Positive}, scored[0])
	assert.Equal(t, sentiment.Scored{Text: "i disliked this", Label: sentiment.Negative}, scored[1])
}

func TestClassifyEmptyInputSkipsNetwork(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty input")
	})

	scored, err := c.Classify(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, scored)
}

func TestClassifyLengthMismatchFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{Comments: []scoredComment{
			{Comment: "only one", Sentiment: 1},
		}})
	})

	_, err := c.Classify(context.Background(), []string{"a", "b"})

	var clsErr *ClassificationError
	require.ErrorAs(t, err, &clsErr)
	assert.Contains(t, clsErr.Reason, "does not match")
}

func TestClassifyMissingCommentsFieldFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"something_else": []}`))
	})

	_, err := c.Classify(context.Background(), []string{"a"})

	var clsErr *ClassificationError
	require.ErrorAs(t, err, &clsErr)
	assert.Contains(t, clsErr.Reason, "missing comments field")
}

func TestClassifyServerErrorFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})

	_, err := c.Classify(context.Background(), []string{"a"})

	var clsErr *ClassificationError
	require.ErrorAs(t, err, &clsErr)
	assert.Contains(t, clsErr.Reason, "status=500")
}

func TestClassifyUnknownCodeFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{Comments: []scoredComment{
			{Comment: "weird", Sentiment: 7},
		}})
	})

	_, err := c.Classify(context.Background(), []string{"a"})

	var clsErr *ClassificationError
	require.ErrorAs(t, err, &clsErr)
	assert.Contains(t, clsErr.Reason, "unknown sentiment code")
}
