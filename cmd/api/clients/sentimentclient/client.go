// Package sentimentclient calls the external sentiment classification
// service. The wire protocol is positional: the service returns exactly
// one scored entry per submitted text, in submission order, with no ids.
package sentimentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"revana/cmd/api/httpclient"
	"revana/config"
	"revana/sentiment"
)

// ClassificationError is returned for any malformed or failed
// classification exchange. Callers treat it as a hard failure of the
// whole analysis rather than guessing labels.
type ClassificationError struct {
	Reason string
	Err    error
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sentiment classification: %s: %v", e.Reason, e.Err)
	}
	return "sentiment classification: " + e.Reason
}

func (e *ClassificationError) Unwrap() error { return e.Err }

type Client struct {
	base *httpclient.BaseClient
}

// New builds a client for the classifier at cfg.BaseURL.
func New(cfg config.SentimentConfig) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.Timeout.Std()})
	return &Client{
		base: httpclient.NewBaseClientWithClient(httpClient, cfg.BaseURL),
	}
}

// Ping reports whether the classifier answers HTTP at all. Any status
// counts as reachable; the health endpoint only cares about liveness.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

type classifyRequest struct {
	Comments []string `json:"comments"`
}

type classifyResponse struct {
	Comments []scoredComment `json:"comments"`
}

type scoredComment struct {
	Comment   string `json:"Comment"`
	Sentiment int    `json:"Sentiment"`
}

// Classify labels every text. The returned slice is index-aligned with
// texts; entry i carries the classifier's normalized form of texts[i].
// Empty input short-circuits without a network call.
func (c *Client) Classify(ctx context.Context, texts []string) ([]sentiment.Scored, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	buf, err := json.Marshal(classifyRequest{Comments: texts})
	if err != nil {
		return nil, &ClassificationError{Reason: "encode request", Err: err}
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/api/v1/youtube-comments", nil, bytes.NewReader(buf))
	if err != nil {
		return nil, &ClassificationError{Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, &ClassificationError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &ClassificationError{Reason: fmt.Sprintf("status=%d body=%s", resp.StatusCode, string(b))}
	}

	var payload classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &ClassificationError{Reason: "decode response", Err: err}
	}
	if payload.Comments == nil {
		return nil, &ClassificationError{Reason: "response missing comments field"}
	}
	if len(payload.Comments) != len(texts) {
		return nil, &ClassificationError{
			Reason: fmt.Sprintf("response length %d does not match request length %d", len(payload.Comments), len(texts)),
		}
	}

	out := make([]sentiment.Scored, len(payload.Comments))
	for i, sc := range payload.Comments {
		label, ok := sentiment.LabelFromCode(sc.Sentiment)
		if !ok {
			return nil, &ClassificationError{Reason: fmt.Sprintf("unknown sentiment code %d at index %d", sc.Sentiment, i)}
		}
		out[i] = sentiment.Scored{Text: sc.Comment, Label: label}
	}
	return out, nil
}
