package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arignang/portfolio/internal/ideas"
)

func TestIdeasPartial(t *testing.T) {
	t.Run("empty topic never reaches the generator", func(t *testing.T) {
		gen := &fakeIdeas{}
		h := newTestHandler(t, gen, &fakeMailer{})

		rec := postForm(h, "/ideas", url.Values{"topic": {"   "}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ideas.EmptyTopicMessage)
		assert.Zero(t, gen.calls)
	})

	t.Run("ideas rendered in order", func(t *testing.T) {
		gen := &fakeIdeas{ideas: []ideas.Idea{
			{Title: "First Idea", Description: "one", Keywords: []string{"a"}},
			{Title: "Second Idea", Description: "two", Keywords: []string{"b"}},
		}}
		h := newTestHandler(t, gen, &fakeMailer{})

		rec := postForm(h, "/ideas", url.Values{"topic": {"Swarm Robotics"}})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Less(t, strings.Index(body, "First Idea"), strings.Index(body, "Second Idea"))
		assert.Equal(t, "Swarm Robotics", gen.topic)
		require.Len(t, gen.reqIDs, 1)
		assert.Equal(t, gen.reqIDs[0], rec.Header().Get("X-Request-ID"))
	})

	t.Run("classified failure shows error panel", func(t *testing.T) {
		gen := &fakeIdeas{err: &ideas.Error{Kind: ideas.KindInvalidCredential}}
		h := newTestHandler(t, gen, &fakeMailer{})

		rec := postForm(h, "/ideas", url.Values{"topic": {"x"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ideas.KindInvalidCredential.Title())
		assert.Contains(t, rec.Body.String(), "error-panel")
	})
}

func TestAPIIdeas(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		gen        *fakeIdeas
		wantStatus int
		wantKind   string
		wantCalls  int
	}{
		{
			name:       "success",
			body:       `{"topic":"Edge AI"}`,
			gen:        &fakeIdeas{ideas: []ideas.Idea{{Title: "T", Description: "D", Keywords: []string{}}}},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "empty topic",
			body:       `{"topic":""}`,
			gen:        &fakeIdeas{},
			wantStatus: http.StatusBadRequest,
			wantKind:   "empty_topic",
		},
		{
			name:       "bad json",
			body:       `{`,
			gen:        &fakeIdeas{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "quota",
			body:       `{"topic":"x"}`,
			gen:        &fakeIdeas{err: &ideas.Error{Kind: ideas.KindQuotaExceeded}},
			wantStatus: http.StatusTooManyRequests,
			wantKind:   ideas.KindQuotaExceeded.String(),
			wantCalls:  1,
		},
		{
			name:       "malformed",
			body:       `{"topic":"x"}`,
			gen:        &fakeIdeas{err: &ideas.Error{Kind: ideas.KindMalformedResponse}},
			wantStatus: http.StatusBadGateway,
			wantKind:   ideas.KindMalformedResponse.String(),
			wantCalls:  1,
		},
		{
			name:       "unclassified error",
			body:       `{"topic":"x"}`,
			gen:        &fakeIdeas{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantKind:   ideas.KindUnknown.String(),
			wantCalls:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.gen, &fakeMailer{})
			rec := do(h, http.MethodPost, "/api/v1/ideas", tt.body, "application/json")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, tt.gen.calls)

			var resp struct {
				RequestID string          `json:"request_id"`
				Ideas     json.RawMessage `json:"ideas"`
				Error     json.RawMessage `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantStatus == http.StatusOK {
				assert.Len(t, resp.RequestID, 36)
				assert.JSONEq(t, `[{"title":"T","description":"D","keywords":[]}]`, string(resp.Ideas))
				return
			}
			if tt.wantKind != "" {
				var e ideaErrorBody
				require.NoError(t, json.Unmarshal(resp.Error, &e))
				assert.Equal(t, tt.wantKind, e.Kind)
				assert.NotEmpty(t, e.Message)
			}
		})
	}
}

func TestAPIIdeasEmptyResultIsArray(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})
	rec := do(h, http.MethodPost, "/api/v1/ideas", `{"topic":"quiet"}`, "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ideas":[]`)
}
