// Package summarizer turns the favorable and unfavorable comment groups
// into two short natural-language paragraphs via a completion API.
package summarizer

import (
	"context"
	"strings"
	"sync"

	"revana/internal/logger"
)

// Pair holds the two-sided summary derived per pipeline run. It is never
// persisted beyond the cache entry that carries it.
type Pair struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

// Fixed fallback strings. A transport or API failure on one side degrades
// only that side; the other side's summary is still returned.
const (
	FallbackPositive = "Error generating positive description."
	FallbackNegative = "Error generating negative description."
	NoPositive       = "No positive description available."
	NoNegative       = "No negative description available."
)

// cannotProceedMarker is how the completion model signals it got nothing
// to work with; the raw refusal is never surfaced to the user.
const cannotProceedMarker = "Please provide the negative comments"

const (
	positivePromptPrefix = "Analyze the following positive and neutral comments and generate a brief, insightful description summarizing their overall sentiment:\n\n"
	negativePromptPrefix = "Analyze the following negative comments and generate a brief, insightful description summarizing their overall sentiment:\n\n"
)

// Completer issues a single completion request. Implementations do not
// retry; latency is bounded by the remote service's own timeout.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces summary pairs through a Completer.
type Generator struct {
	completer Completer
}

func New(c Completer) *Generator {
	return &Generator{completer: c}
}

// Generate issues the positive and negative completion requests
// concurrently and joins the results. Each side fails independently: an
// error or empty response degrades that side to its fixed fallback string
// and never turns into an error for the caller. Empty input groups still
// issue the call; the prompt template degrades gracefully.
func (g *Generator) Generate(ctx context.Context, favorable, unfavorable []string) Pair {
	var (
		wg       sync.WaitGroup
		positive string
		negative string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		text, err := g.completer.Complete(ctx, positivePromptPrefix+strings.Join(favorable, "\n"))
		switch {
		case err != nil:
			logger.ErrorWithFields("positive summary failed", logger.Fields{"error": err.Error()})
			positive = FallbackPositive
		case strings.TrimSpace(text) == "":
			positive = NoPositive
		default:
			positive = text
		}
	}()
	go func() {
		defer wg.Done()
		text, err := g.completer.Complete(ctx, negativePromptPrefix+strings.Join(unfavorable, "\n"))
		switch {
		case err != nil:
			logger.ErrorWithFields("negative summary failed", logger.Fields{"error": err.Error()})
			negative = FallbackNegative
		case strings.TrimSpace(text) == "", strings.Contains(text, cannotProceedMarker):
			negative = NoNegative
		default:
			negative = text
		}
	}()
	wg.Wait()

	return Pair{Positive: positive, Negative: negative}
}
