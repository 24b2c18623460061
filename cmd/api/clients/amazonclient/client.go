// Package amazonclient fetches product details and reviews from the
// real-time-amazon-data API on RapidAPI.
package amazonclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"revana/cmd/api/httpclient"
	"revana/config"
)

// HTTPError carries the upstream status code so services can map unknown
// products to 404.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("amazon api: status=%d body=%s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

var ErrMissingAPIKey = errors.New("RAPIDAPI_KEY is required")

// RawReview is one platform review, unclassified.
type RawReview struct {
	Author       string
	ProfileImage string
	Title        string
	Text         string
	Rating       int
}

// ProductSummary is the detail-level description of one product.
type ProductSummary struct {
	ASIN     string
	Name     string
	ImageURL string
}

type Client struct {
	base    *httpclient.BaseClient
	apiKey  string
	host    string
	country string
}

// New builds a client from configuration. The API key comes from the
// environment.
func New(cfg config.AmazonConfig) (*Client, error) {
	apiKey := os.Getenv(config.EnvRapidAPIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	host := cfg.BaseURL
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return &Client{
		base:    httpclient.NewBaseClient(cfg.BaseURL),
		apiKey:  apiKey,
		host:    host,
		country: cfg.Country,
	}, nil
}

func (c *Client) get(ctx context.Context, relPath string, query url.Values, out any) error {
	query.Set("country", c.country)
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type productDetailsResponse struct {
	Status string `json:"status"`
	Data   struct {
		ASIN         string `json:"asin"`
		ProductTitle string `json:"product_title"`
		ProductPhoto string `json:"product_photo"`
	} `json:"data"`
}

type productReviewsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Reviews []struct {
			ReviewTitle   string  `json:"review_title"`
			ReviewComment string  `json:"review_comment"`
			ReviewStarRat float64 `json:"review_star_rating,string"`
			ReviewAuthor  string  `json:"review_author"`
			AuthorAvatar  string  `json:"review_author_avatar"`
		} `json:"reviews"`
	} `json:"data"`
}

// GetProduct fetches the detail record for one ASIN. An unknown ASIN
// surfaces as a 404 HTTPError.
func (c *Client) GetProduct(ctx context.Context, asin string) (ProductSummary, error) {
	q := url.Values{}
	q.Set("asin", asin)

	var payload productDetailsResponse
	if err := c.get(ctx, "/product-details", q, &payload); err != nil {
		return ProductSummary{}, err
	}
	if payload.Data.ASIN == "" {
		return ProductSummary{}, &HTTPError{StatusCode: http.StatusNotFound, Body: "product not found: " + asin}
	}

	return ProductSummary{
		ASIN:     payload.Data.ASIN,
		Name:     payload.Data.ProductTitle,
		ImageURL: payload.Data.ProductPhoto,
	}, nil
}

// ListReviews fetches one page of reviews for an ASIN.
func (c *Client) ListReviews(ctx context.Context, asin string) ([]RawReview, error) {
	q := url.Values{}
	q.Set("asin", asin)

	var payload productReviewsResponse
	if err := c.get(ctx, "/product-reviews", q, &payload); err != nil {
		return nil, err
	}

	out := make([]RawReview, 0, len(payload.Data.Reviews))
	for _, r := range payload.Data.Reviews {
		out = append(out, RawReview{
			Author:       r.ReviewAuthor,
			ProfileImage: r.AuthorAvatar,
			Title:        r.ReviewTitle,
			Text:         r.ReviewComment,
			Rating:       int(r.ReviewStarRat),
		})
	}
	return out, nil
}
