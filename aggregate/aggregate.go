// Package aggregate fuses locally stored comments with freshly classified
// platform comments into one scored collection, computes the sentiment
// tally and drives the two-sided summary.
package aggregate

import (
	"context"
	"fmt"
	"time"

	"revana/sentiment"
	"revana/summarizer"
)

// Source tells where a scored comment came from.
type Source string

const (
	SourceStored   Source = "stored"
	SourcePlatform Source = "platform"
)

// Comment is the unit the aggregator operates on: a platform comment or a
// stored comment after (or exempt from) classification.
type Comment struct {
	Author         string          `json:"author"`
	AuthorImage    string          `json:"author_image,omitempty"`
	Text           string          `json:"text"`
	NormalizedText string          `json:"normalized_text,omitempty"`
	Sentiment      sentiment.Label `json:"sentiment"`
	Source         Source          `json:"source"`
	LikeCount      int             `json:"like_count,omitempty"`
	ReplyCount     int             `json:"reply_count,omitempty"`
	Rating         int             `json:"rating,omitempty"`
	CreatedAt      time.Time       `json:"created_at,omitempty"`
}

// summaryText is what feeds the completion prompt for this comment.
func (c Comment) summaryText() string {
	if c.NormalizedText != "" {
		return c.NormalizedText
	}
	return c.Text
}

// Classifier scores a batch of texts in a single remote call. The result
// has the same length and order as the input.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]sentiment.Scored, error)
}

// Summarizer produces the two-sided natural-language summary.
type Summarizer interface {
	Generate(ctx context.Context, favorable, unfavorable []string) summarizer.Pair
}

// FallbackPolicy controls what happens when the classifier yields no
// negative items for the unfavorable summary group.
type FallbackPolicy int

const (
	// NoFallback leaves the unfavorable group empty.
	NoFallback FallbackPolicy = iota
	// LowRatedStored substitutes all low-star stored reviews for the
	// unfavorable group — a numeric-rating proxy for sentiment. Only the
	// product-review flow opts in.
	LowRatedStored FallbackPolicy = iota
)

// Result is the derived payload cached per subject.
type Result struct {
	Comments []Comment       `json:"comments"`
	Tally    sentiment.Tally `json:"sentiment_tally"`
	Summary  summarizer.Pair `json:"summary"`
}

// Aggregate classifies the platform comments, merges them with the stored
// ones (stored items sort first, so a user's just-submitted comment is
// visible without waiting for reclassification), tallies sentiment and
// generates the summary pair.
//
// Only platform comments go through the classifier; stored comments keep
// their persisted sentiment (defaulting to neutral upstream). The raw
// slice must arrive already filtered — it is never reordered, filtered or
// deduplicated here, because classifier results zip back on by position.
func Aggregate(ctx context.Context, stored, raw []Comment, cls Classifier, sum Summarizer, fallback FallbackPolicy) (*Result, error) {
	if len(raw) > 0 {
		texts := make([]string, len(raw))
		for i, c := range raw {
			texts[i] = c.Text
		}
		scored, err := cls.Classify(ctx, texts)
		if err != nil {
			return nil, err
		}
		if len(scored) != len(texts) {
			return nil, fmt.Errorf("classifier returned %d results for %d texts", len(scored), len(texts))
		}
		for i := range raw {
			raw[i].Sentiment = scored[i].Label
			raw[i].NormalizedText = scored[i].Text
			raw[i].Source = SourcePlatform
		}
	}

	merged := make([]Comment, 0, len(stored)+len(raw))
	for _, c := range stored {
		c.Source = SourceStored
		if !c.Sentiment.Valid() {
			c.Sentiment = sentiment.Neutral
		}
		merged = append(merged, c)
	}
	merged = append(merged, raw...)

	var tally sentiment.Tally
	var favorable, unfavorable []string
	for _, c := range merged {
		tally.Add(c.Sentiment)
		if c.Sentiment == sentiment.Negative {
			unfavorable = append(unfavorable, c.summaryText())
		} else {
			favorable = append(favorable, c.summaryText())
		}
	}

	if len(unfavorable) == 0 && fallback == LowRatedStored {
		for _, c := range stored {
			if c.Rating > 0 && c.Rating <= lowRatedThreshold {
				unfavorable = append(unfavorable, c.summaryText())
			}
		}
	}

	return &Result{
		Comments: merged,
		Tally:    tally,
		Summary:  sum.Generate(ctx, favorable, unfavorable),
	}, nil
}

const lowRatedThreshold = 2
