package ideas

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arignang/portfolio/internal/ai"
)

type requestIDKey struct{}

// WithRequestID attaches id to ctx so Request logs and reports it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored in ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Generator runs the idea request pipeline against a provider. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	provider    ai.Provider
	temperature float64
	maxTokens   int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTemperature sets the sampling temperature sent to the provider.
func WithTemperature(t float64) Option {
	return func(g *Generator) { g.temperature = t }
}

// WithMaxTokens caps the provider's output length.
func WithMaxTokens(n int) Option {
	return func(g *Generator) { g.maxTokens = n }
}

// NewGenerator returns a Generator backed by provider.
func NewGenerator(provider ai.Provider, opts ...Option) *Generator {
	g := &Generator{provider: provider}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Provider returns the name of the backing provider.
func (g *Generator) Provider() string { return g.provider.Name() }

// Request asks the provider for ideas about topic. It makes exactly one
// provider call. On failure the error is an *Error.
func (g *Generator) Request(ctx context.Context, topic string) ([]Idea, error) {
	requestID := RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	start := time.Now()
	log := slog.With("request_id", requestID, "provider", g.provider.Name())

	resp, err := g.provider.Chat(ctx, ChatRequestFor(topic, g.temperature, g.maxTokens))
	if err != nil {
		kind := Classify(err)
		log.Error("Research idea request failed", "kind", kind.String(), "topic", topic, "error", err)
		return nil, &Error{Kind: kind, RequestID: requestID, Err: err}
	}

	result, err := Parse(resp.Content)
	if err != nil {
		var e *Error
		if !errors.As(err, &e) {
			e = &Error{Kind: KindUnknown, Err: err}
		}
		e.RequestID = requestID
		log.Error("Research idea response rejected", "kind", e.Kind.String(), "topic", topic, "content", truncate(resp.Content, 500), "error", e.Err)
		return nil, e
	}

	log.Info("Research ideas generated",
		"topic", topic,
		"count", len(result),
		"tokens", resp.TokensUsed,
		"model", resp.Model,
		"duration", time.Since(start).String(),
	)
	return result, nil
}

// ChatRequestFor builds the provider request for topic.
func ChatRequestFor(topic string, temperature float64, maxTokens int) ai.ChatRequest {
	return ai.ChatRequest{
		Messages:    []ai.Message{{Role: "user", Content: BuildPrompt(topic)}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Schema:      ResponseSchema(),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
