package dto

// SearchResultDTO is one entry of a video search response.
type SearchResultDTO struct {
	VideoID      string `json:"video_id" example:"dQw4w9WgXcQ"`
	Title        string `json:"title" example:"How transformers work"`
	Channel      string `json:"channel" example:"ExplainedTV"`
	ThumbnailURL string `json:"thumbnail_url" example:"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"`
}

// VideoDetailDTO is the response schema of GET /api/v1/videos/detail.
type VideoDetailDTO struct {
	VideoID      string `json:"video_id" example:"dQw4w9WgXcQ"`
	Title        string `json:"title" example:"How transformers work"`
	Channel      string `json:"channel" example:"ExplainedTV"`
	ThumbnailURL string `json:"thumbnail_url" example:"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"`
}
