package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"revana/config"
)

// NewCompleterFromConfig builds the configured completion provider.
func NewCompleterFromConfig(cfg config.CompletionConfig) (Completer, error) {
	switch cfg.Provider {
	case "openrouter":
		apiKey := os.Getenv(config.EnvOpenRouterAPIKey)
		if apiKey == "" {
			return nil, errors.New("OPENROUTER_API_KEY is required")
		}
		return NewOpenRouterCompleter(cfg.BaseURL, apiKey, cfg.Model), nil
	case "gemini":
		apiKey := os.Getenv(config.EnvGeminiAPIKey)
		if apiKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required")
		}
		return &GeminiCompleter{APIKey: apiKey, Model: cfg.Model}, nil
	}
	return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
}

// OpenRouterCompleter talks to an OpenAI-compatible chat completion
// endpoint (OpenRouter by default).
type OpenRouterCompleter struct {
	client openai.Client
	model  string
}

func NewOpenRouterCompleter(baseURL, apiKey, model string) *OpenRouterCompleter {
	return &OpenRouterCompleter{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apiKey),
		),
		model: model,
	}
}

func (c *OpenRouterCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GeminiCompleter uses the Gemini API directly.
type GeminiCompleter struct {
	APIKey string
	Model  string
}

func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.APIKey,
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, c.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
