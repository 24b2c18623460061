// Package eventbus publishes telemetry events for comment submissions and
// completed aggregations. Publishing is strictly best-effort: the bus is
// not a cache-invalidation channel and a publish failure never fails the
// request that triggered it.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topic names. Managed in one place so they can move to configuration
// later without touching call sites.
const (
	TopicCommentCreated    = "revana.comment.created"
	TopicAnalysisCompleted = "revana.analysis.completed"
)

// Event is the payload envelope of every Kafka message.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEvent wraps payload in an envelope with a fresh id.
func NewEvent(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}, nil
}

// CommentCreatedPayload describes a locally submitted comment or review.
type CommentCreatedPayload struct {
	SubjectKind string `json:"subject_kind"` // "video" | "product"
	SubjectID   string `json:"subject_id"`
	UserEmail   string `json:"user_email"`
	Rating      int    `json:"rating,omitempty"`
}

// AnalysisCompletedPayload describes one finished aggregation run.
type AnalysisCompletedPayload struct {
	SubjectKind string `json:"subject_kind"`
	SubjectID   string `json:"subject_id"`
	Comments    int    `json:"comments"`
	Positive    int    `json:"positive"`
	Neutral     int    `json:"neutral"`
	Negative    int    `json:"negative"`
}

// EventBus abstracts event publishing so services can run without Kafka
// (see NopBus) and tests can capture events.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NopBus drops all events; used when no brokers are configured.
type NopBus struct{}

func (NopBus) Publish(context.Context, string, Event) error { return nil }
func (NopBus) Close()                                       {}
