package dto

import (
	"time"

	"revana/aggregate"
	"revana/sentiment"
)

// CommentDTO is one analyzed comment or review in an analysis response.
type CommentDTO struct {
	Author      string    `json:"author" example:"Jane Viewer"`
	AuthorImage string    `json:"author_image,omitempty" example:"https://example.com/avatar.png"`
	Text        string    `json:"text" example:"Great video!"`
	Sentiment   string    `json:"sentiment" example:"positive"`
	Source      string    `json:"source" example:"platform"`
	LikeCount   int       `json:"like_count,omitempty" example:"12"`
	ReplyCount  int       `json:"reply_count,omitempty" example:"3"`
	Rating      int       `json:"rating,omitempty" example:"4"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// SentimentTallyDTO carries the per-label counts of one analysis.
type SentimentTallyDTO struct {
	Positive int `json:"positive" example:"10"`
	Neutral  int `json:"neutral" example:"5"`
	Negative int `json:"negative" example:"2"`
}

// SummaryDTO carries the two-sided generated summary.
type SummaryDTO struct {
	Positive string `json:"positive" example:"Viewers praise the pacing and clarity."`
	Negative string `json:"negative" example:"Several viewers report audio issues."`
}

// AnalysisResponseDTO is the response schema of the comment and review
// analysis endpoints.
type AnalysisResponseDTO struct {
	Comments []CommentDTO      `json:"comments"`
	Tally    SentimentTallyDTO `json:"sentiment_tally"`
	Summary  SummaryDTO        `json:"summary"`
}

// NewAnalysisResponseDTO flattens an aggregation result for transport.
func NewAnalysisResponseDTO(res *aggregate.Result) AnalysisResponseDTO {
	out := AnalysisResponseDTO{
		Comments: make([]CommentDTO, 0, len(res.Comments)),
		Tally: SentimentTallyDTO{
			Positive: res.Tally.Positive,
			Neutral:  res.Tally.Neutral,
			Negative: res.Tally.Negative,
		},
		Summary: SummaryDTO{
			Positive: res.Summary.Positive,
			Negative: res.Summary.Negative,
		},
	}
	for _, c := range res.Comments {
		label := c.Sentiment
		if !label.Valid() {
			label = sentiment.Neutral
		}
		out.Comments = append(out.Comments, CommentDTO{
			Author:      c.Author,
			AuthorImage: c.AuthorImage,
			Text:        c.Text,
			Sentiment:   string(label),
			Source:      string(c.Source),
			LikeCount:   c.LikeCount,
			ReplyCount:  c.ReplyCount,
			Rating:      c.Rating,
			CreatedAt:   c.CreatedAt,
		})
	}
	return out
}
