package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider is the interface that all text-generation backends implement.
type Provider interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Name() string // "gemini" or "ollama"
}

// ChatRequest is a provider-agnostic request.
type ChatRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	Schema      *Schema // constrain output to JSON matching this schema
}

// ChatResponse is a provider-agnostic response.
type ChatResponse struct {
	Content    string
	TokensUsed int
	Model      string // e.g. "gemini-2.5-flash" or "llama3.1"
	Provider   string
}

// Message represents a single message in a chat conversation.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// APIError is returned when a provider answers with a non-200 status.
type APIError struct {
	Provider   string
	StatusCode int
	Status     string // provider status code, e.g. "RESOURCE_EXHAUSTED"
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s returned status %d (%s): %s", e.Provider, e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// Options selects and configures a provider.
type Options struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	OllamaURL   string
	OllamaModel string
	Timeout     time.Duration
}

// NewProvider returns the provider named in opts. An empty name selects Gemini.
func NewProvider(opts Options) (Provider, error) {
	client := &http.Client{Timeout: opts.Timeout}
	if opts.Timeout <= 0 {
		client.Timeout = 60 * time.Second
	}

	switch strings.ToLower(opts.Provider) {
	case "", "gemini":
		return NewGeminiProvider(GeminiConfig{
			APIKey:     opts.APIKey,
			Model:      opts.Model,
			BaseURL:    opts.BaseURL,
			HTTPClient: client,
		}), nil
	case "ollama":
		return NewOllamaProvider(OllamaConfig{
			BaseURL:    opts.OllamaURL,
			Model:      opts.OllamaModel,
			HTTPClient: client,
		}), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", opts.Provider)
	}
}

// messagesToPrompt concatenates chat messages into a single prompt string.
func messagesToPrompt(messages []Message) string {
	if len(messages) == 1 {
		return messages[0].Content
	}

	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Content)
		if m.Role == "system" {
			sb.WriteString("\n\n")
		} else {
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String())
}
