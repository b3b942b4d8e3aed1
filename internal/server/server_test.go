package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portfolio "github.com/arignang/portfolio"
	"github.com/arignang/portfolio/internal/config"
	"github.com/arignang/portfolio/internal/content"
	"github.com/arignang/portfolio/internal/ideas"
	"github.com/arignang/portfolio/internal/mailer"
)

type fakeIdeas struct {
	ideas  []ideas.Idea
	err    error
	calls  int
	topic  string
	reqIDs []string
}

func (f *fakeIdeas) Request(ctx context.Context, topic string) ([]ideas.Idea, error) {
	f.calls++
	f.topic = topic
	f.reqIDs = append(f.reqIDs, ideas.RequestIDFrom(ctx))
	return f.ideas, f.err
}

type fakeMailer struct {
	err  error
	sent []mailer.Message
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestHandler(t *testing.T, gen IdeaRequester, mail mailer.Mailer) http.Handler {
	t.Helper()
	site, err := content.Parse(portfolio.ContentYAML)
	require.NoError(t, err)

	s := New(config.DefaultConfig(), site, gen, mail, config.DefaultThemes(), "1.2.3", "now")
	h, err := s.Handler()
	require.NoError(t, err)
	return h
}

func do(h http.Handler, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	return do(h, http.MethodPost, target, form.Encode(), "application/x-www-form-urlencoded")
}

func TestHomePage(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})

	rec := do(h, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Research Idea Generator")
	assert.Contains(t, body, "application/ld+json")
	assert.Contains(t, body, ":root.dark")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestUnknownPathIsNotFound(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})
	rec := do(h, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticAssets(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})
	rec := do(h, http.MethodGet, "/static/css/app.css", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectDetail(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})

	rec := do(h, http.MethodGet, "/projects/ai-powered-sign-language-translator", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Technical Details")

	rec = do(h, http.MethodGet, "/projects/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")
}

func TestProjectsGridPartial(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})

	rec := do(h, http.MethodGet, "/projects?page=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `class="card project"`)

	rec = do(h, http.MethodGet, "/projects?q=zzzz-no-match", "", "")
	assert.Contains(t, rec.Body.String(), "No projects match your search.")
}

func TestAPIProjects(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantLen  int
	}{
		{"first page", "", 1, content.ProjectsPerPage},
		{"second page", "?page=2", 2, 6},
		{"out of range resets", "?page=9", 1, content.ProjectsPerPage},
		{"garbage page resets", "?page=abc", 1, content.ProjectsPerPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, "/api/v1/projects"+tt.query, "", "")
			require.Equal(t, http.StatusOK, rec.Code)

			var page content.ProjectPage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Len(t, page.Projects, tt.wantLen)
			assert.Equal(t, 12, page.Total)
			assert.Equal(t, 2, page.TotalPages)
		})
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})
	rec := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
