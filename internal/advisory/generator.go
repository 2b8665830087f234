// Package advisory wraps the external text generation service. Nothing here
// may block correctness: summaries fall back to fixed phrases and the reason
// check fails open.
package advisory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 15 * time.Second
)

// ErrUnconfigured is returned by a generator that has no API key.
var ErrUnconfigured = errors.New("advisory service is not configured")

// Generator turns a prompt into text, or fails.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Unconfigured always fails, so every call takes its fallback path.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrUnconfigured
}

// Config configures the OpenAI-compatible generator.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// HTTPClient overrides the transport; nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// OpenAIGenerator calls a chat completions endpoint.
type OpenAIGenerator struct {
	client openai.Client
	model  string
}

// NewGenerator returns an OpenAIGenerator, or Unconfigured when cfg has no
// API key.
func NewGenerator(cfg Config) Generator {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return Unconfigured{}
	}
	return NewOpenAIGenerator(cfg)
}

// NewOpenAIGenerator builds a client for cfg, filling in defaults.
func NewOpenAIGenerator(cfg Config) *OpenAIGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithRequestTimeout(cfg.Timeout),
		// Callers already degrade gracefully; retrying only delays the fallback.
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenAIGenerator{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
