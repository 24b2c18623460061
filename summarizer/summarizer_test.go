package summarizer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"revana/summarizer"
)

// stubCompleter routes positive/negative prompts to separate behaviors.
type stubCompleter struct {
	positive    string
	positiveErr error
	negative    string
	negativeErr error

	calls int
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	if strings.HasPrefix(prompt, "Analyze the following negative") {
		return s.negative, s.negativeErr
	}
	return s.positive, s.positiveErr
}

func TestGenerateBothSides(t *testing.T) {
	c := &stubCompleter{positive: "viewers loved it", negative: "audio complaints"}
	g := summarizer.New(c)

	pair := g.Generate(context.Background(), []string{"great"}, []string{"bad audio"})

	assert.Equal(t, "viewers loved it", pair.Positive)
	assert.Equal(t, "audio complaints", pair.Negative)
	assert.Equal(t, 2, c.calls)
}

func TestNegativeFailureDegradesOnlyNegative(t *testing.T) {
	c := &stubCompleter{positive: "viewers loved it", negativeErr: errors.New("boom")}
	g := summarizer.New(c)

	pair := g.Generate(context.Background(), []string{"great"}, []string{"bad"})

	assert.Equal(t, "viewers loved it", pair.Positive)
	assert.Equal(t, summarizer.FallbackNegative, pair.Negative)
}

func TestPositiveFailureDegradesOnlyPositive(t *testing.T) {
	c := &stubCompleter{positiveErr: errors.New("boom"), negative: "complaints"}
	g := summarizer.New(c)

	pair := g.Generate(context.Background(), nil, []string{"bad"})

	assert.Equal(t, summarizer.FallbackPositive, pair.Positive)
	assert.Equal(t, "complaints", pair.Negative)
}

func TestRefusalResponseSubstituted(t *testing.T) {
	c := &stubCompleter{
		positive: "fine",
		negative: "Please provide the negative comments you would like me to analyze.",
	}
	g := summarizer.New(c)

	pair := g.Generate(context.Background(), []string{"ok"}, nil)

	assert.Equal(t, summarizer.NoNegative, pair.Negative)
}

func TestEmptyResponsesSubstituted(t *testing.T) {
	c := &stubCompleter{positive: "  ", negative: ""}
	g := summarizer.New(c)

	pair := g.Generate(context.Background(), nil, nil)

	assert.Equal(t, summarizer.NoPositive, pair.Positive)
	assert.Equal(t, summarizer.NoNegative, pair.Negative)
	assert.Equal(t, 2, c.calls, "empty groups still issue both calls")
}
