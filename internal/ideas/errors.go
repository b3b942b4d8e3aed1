package ideas

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/arignang/portfolio/internal/ai"
)

// Kind classifies why an idea request failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCredential
	KindNetworkUnavailable
	KindQuotaExceeded
	KindMalformedResponse
	KindUnexpectedShape
	KindEmptyResponse
)

// EmptyTopicMessage is shown when a visitor submits a blank topic.
const EmptyTopicMessage = "Please enter a topic or keyword."

// ErrEmptyTopic is returned by ValidateTopic for blank input.
var ErrEmptyTopic = errors.New("empty topic")

// ValidateTopic rejects empty or whitespace-only topics. Callers run it before
// Request; the pipeline itself forwards whatever topic it is given.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindInvalidCredential:
		return "invalid_credential"
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindMalformedResponse:
		return "malformed_response"
	case KindUnexpectedShape:
		return "unexpected_shape"
	case KindEmptyResponse:
		return "empty_response"
	default:
		return "unknown"
	}
}

// Title is the heading shown to visitors.
func (k Kind) Title() string {
	switch k {
	case KindInvalidCredential:
		return "Invalid API Key"
	case KindNetworkUnavailable:
		return "Network Connection Error"
	case KindQuotaExceeded:
		return "API Quota Exceeded"
	case KindMalformedResponse, KindUnexpectedShape, KindEmptyResponse:
		return "Service Response Error"
	default:
		return "Oops! Something went wrong."
	}
}

// Message is the explanation shown to visitors.
func (k Kind) Message() string {
	switch k {
	case KindInvalidCredential:
		return "The API key configured for this site is missing or invalid. This feature cannot work without a valid key."
	case KindNetworkUnavailable:
		return "We couldn't connect to the AI service. Please check your internet connection and try again."
	case KindQuotaExceeded:
		return "The request limit for the AI service has been reached. Please try again later."
	case KindMalformedResponse, KindUnexpectedShape, KindEmptyResponse:
		return "The AI service returned an unexpected response. This might be a temporary issue. Please try again in a few moments."
	default:
		return "An unexpected error occurred. Please try again later."
	}
}

// HTTPStatus maps the kind onto a response code for JSON clients.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidCredential:
		return http.StatusUnauthorized
	case KindNetworkUnavailable:
		return http.StatusServiceUnavailable
	case KindQuotaExceeded:
		return http.StatusTooManyRequests
	case KindMalformedResponse, KindUnexpectedShape, KindEmptyResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the failure returned by Generator.Request.
type Error struct {
	Kind      Kind
	RequestID string
	Err       error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("research ideas: %s: %v", e.Kind, e.Err)
	}
	return "research ideas: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Classify maps a provider failure onto a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ai.ErrMissingAPIKey) {
		return KindInvalidCredential
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "api key not valid", "api_key_invalid", "api key not configured"):
		return KindInvalidCredential
	case containsAny(msg, "failed to fetch", "network request failed", "no such host", "connection refused"):
		return KindNetworkUnavailable
	case containsAny(msg, "quota", "rate limit"):
		return KindQuotaExceeded
	}

	var apiErr *ai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return KindQuotaExceeded
		}
		return KindUnknown
	}

	if errors.Is(err, context.Canceled) {
		return KindUnknown
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return KindNetworkUnavailable
	}
	return KindUnknown
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
