// Package youtubeclient is a thin client for the YouTube Data API v3.
// It knows nothing about sentiment or storage; it only fetches comment
// threads, video snippets and search results.
package youtubeclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"

	"revana/cmd/api/httpclient"
	"revana/config"
)

// HTTPError carries the upstream status code so services can map unknown
// videos to 404 instead of a blanket 500.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("youtube api: status=%d body=%s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

var ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY is required")

// RawComment is one top-level platform comment, unclassified.
type RawComment struct {
	Author       string
	ProfileImage string
	Text         string
	LikeCount    int
	ReplyCount   int
}

// VideoSummary is the snippet-level description of one video.
type VideoSummary struct {
	VideoID      string
	Title        string
	Channel      string
	ThumbnailURL string
}

type Client struct {
	base     *httpclient.BaseClient
	apiKey   string
	pageSize int
}

// New builds a client from configuration. The API key comes from the
// environment.
func New(cfg config.YouTubeConfig) (*Client, error) {
	apiKey := os.Getenv(config.EnvYouTubeAPIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		base:     httpclient.NewBaseClient(cfg.BaseURL),
		apiKey:   apiKey,
		pageSize: cfg.PageSize,
	}, nil
}

// Video ids are exactly 11 characters of this alphabet.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Path-based URL forms: youtu.be/<id>, /embed/<id>, /shorts/<id>, /v/<id>
var videoPathRe = regexp.MustCompile(`(?:^|/)(?:embed/|shorts/|v/)?([A-Za-z0-9_-]{11})(?:$|[/?])`)

// NormalizeVideoID extracts the canonical 11-character video id from a
// bare id or any of the usual URL shapes (watch?v=, youtu.be/, embed/,
// shorts/). Unrecognized input returns an error instead of a guess.
func NormalizeVideoID(input string) (string, error) {
	if videoIDRe.MatchString(input) {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("not a video id or url: %q", input)
	}

	if v := u.Query().Get("v"); videoIDRe.MatchString(v) {
		return v, nil
	}

	if m := videoPathRe.FindStringSubmatch(u.Path); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("no video id found in %q", input)
}

func (c *Client) get(ctx context.Context, relPath string, query url.Values, out any) error {
	query.Set("key", c.apiKey)
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	return decodeJSON(resp.Body, out)
}

// ListComments fetches up to one page of top-level comments for videoID.
func (c *Client) ListComments(ctx context.Context, videoID string) ([]RawComment, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("videoId", videoID)
	q.Set("maxResults", strconv.Itoa(c.pageSize))

	var payload commentThreadListResponse
	if err := c.get(ctx, "/commentThreads", q, &payload); err != nil {
		return nil, err
	}

	out := make([]RawComment, 0, len(payload.Items))
	for _, item := range payload.Items {
		top := item.Snippet.TopLevelComment.Snippet
		out = append(out, RawComment{
			Author:       top.AuthorDisplayName,
			ProfileImage: top.AuthorProfileImageURL,
			Text:         top.TextDisplay,
			LikeCount:    top.LikeCount,
			ReplyCount:   item.Snippet.TotalReplyCount,
		})
	}
	return out, nil
}

// GetVideo fetches snippet metadata for one video. Unknown ids come back
// as a 404 HTTPError; the videos.list endpoint itself returns 200 with an
// empty item list, which this maps to the same error.
func (c *Client) GetVideo(ctx context.Context, videoID string) (VideoSummary, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", videoID)

	var payload videoListResponse
	if err := c.get(ctx, "/videos", q, &payload); err != nil {
		return VideoSummary{}, err
	}
	if len(payload.Items) == 0 {
		return VideoSummary{}, &HTTPError{StatusCode: http.StatusNotFound, Body: "video not found: " + videoID}
	}

	item := payload.Items[0]
	return VideoSummary{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		Channel:      item.Snippet.ChannelTitle,
		ThumbnailURL: item.Snippet.Thumbnails.best(),
	}, nil
}

// Search runs a video search for the given query.
func (c *Client) Search(ctx context.Context, query string) ([]VideoSummary, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(c.pageSize))
	q.Set("q", query)

	var payload searchListResponse
	if err := c.get(ctx, "/search", q, &payload); err != nil {
		return nil, err
	}

	out := make([]VideoSummary, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, VideoSummary{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Channel:      item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.best(),
		})
	}
	return out, nil
}
