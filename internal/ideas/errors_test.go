package ideas

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arignang/portfolio/internal/ai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid key text", errors.New("API key not valid. Please pass a valid API key."), KindInvalidCredential},
		{"invalid key reason", errors.New("reason: API_KEY_INVALID"), KindInvalidCredential},
		{"missing key", ai.ErrMissingAPIKey, KindInvalidCredential},
		{"wrapped missing key", fmt.Errorf("chat: %w", ai.ErrMissingAPIKey), KindInvalidCredential},
		{"gemini 400 invalid key", &ai.APIError{Provider: "gemini", StatusCode: 400, Message: "API key not valid."}, KindInvalidCredential},
		{"failed to fetch", errors.New("TypeError: Failed to fetch"), KindNetworkUnavailable},
		{"network request failed", errors.New("Network request failed"), KindNetworkUnavailable},
		{"dns", errors.New("dial tcp: lookup example.invalid: no such host"), KindNetworkUnavailable},
		{"url error", &url.Error{Op: "Post", URL: "https://x", Err: errors.New("i/o timeout")}, KindNetworkUnavailable},
		{"net op error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("unreachable")}, KindNetworkUnavailable},
		{"quota text", errors.New("Resource has been exhausted (e.g. check quota)."), KindQuotaExceeded},
		{"rate limit text", errors.New("Rate limit reached"), KindQuotaExceeded},
		{"429 status", &ai.APIError{Provider: "gemini", StatusCode: http.StatusTooManyRequests, Message: "slow down"}, KindQuotaExceeded},
		{"500 status", &ai.APIError{Provider: "gemini", StatusCode: 500, Message: "internal"}, KindUnknown},
		{"canceled", fmt.Errorf("gemini request failed: %w", context.Canceled), KindUnknown},
		{"other", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKindPresentation(t *testing.T) {
	kinds := []Kind{
		KindUnknown, KindInvalidCredential, KindNetworkUnavailable, KindQuotaExceeded,
		KindMalformedResponse, KindUnexpectedShape, KindEmptyResponse,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		assert.NotEmpty(t, k.Title(), k.String())
		assert.NotEmpty(t, k.Message(), k.String())
		assert.False(t, seen[k.String()], "duplicate code %s", k)
		seen[k.String()] = true
	}

	assert.Equal(t, "Invalid API Key", KindInvalidCredential.Title())
	assert.Equal(t, KindMalformedResponse.Message(), KindEmptyResponse.Message())
	assert.Equal(t, http.StatusTooManyRequests, KindQuotaExceeded.HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, KindUnexpectedShape.HTTPStatus())
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindQuotaExceeded})
	assert.Equal(t, KindQuotaExceeded, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestValidateTopic(t *testing.T) {
	assert.ErrorIs(t, ValidateTopic(""), ErrEmptyTopic)
	assert.ErrorIs(t, ValidateTopic(" \t\n"), ErrEmptyTopic)
	assert.NoError(t, ValidateTopic("Robotics"))
}
