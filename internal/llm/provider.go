// Package llm drafts demand letters through an external model API. It is an
// optional override: any failure here is non-fatal, and callers fall back to
// the deterministic template pipeline.
package llm

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"
)

// sharedHTTPClient is used by all providers; a 2-minute timeout covers slow
// model responses.
var sharedHTTPClient = &http.Client{
	Timeout: 2 * time.Minute,
}

// defaultMaxTokens bounds the drafted letter length.
const defaultMaxTokens = 2000

// Default models per provider when none is configured.
const (
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-3-haiku-20240307"
)

// Request holds the parameters for a completion call.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response holds the drafted letter text and the model that produced it.
type Response struct {
	Content string
	Model   string
}

// Provider is the interface for model completion backends.
type Provider interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// ErrNoProvider means no API key is configured; callers should use the
// deterministic template path.
var ErrNoProvider = errors.New("no LLM provider configured (set OPENAI_API_KEY or ANTHROPIC_API_KEY)")

// FromEnv resolves a provider from the environment: OpenAI when
// OPENAI_API_KEY is set, otherwise Anthropic when ANTHROPIC_API_KEY is set.
// The optional DEPOSITCLAIM_MODEL env var overrides the default model name.
func FromEnv() (Provider, error) {
	model := os.Getenv("DEPOSITCLAIM_MODEL")
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if model == "" {
			model = defaultOpenAIModel
		}
		return &openaiProvider{model: model, apiKey: key}, nil
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		if model == "" {
			model = defaultAnthropicModel
		}
		return &anthropicProvider{model: model, apiKey: key}, nil
	}
	return nil, ErrNoProvider
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
