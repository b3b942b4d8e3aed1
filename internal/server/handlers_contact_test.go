package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arignang/portfolio/internal/mailer"
)

func TestContact(t *testing.T) {
	valid := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there"},
	}

	t.Run("sent", func(t *testing.T) {
		m := &fakeMailer{}
		h := newTestHandler(t, &fakeIdeas{}, m)

		rec := postForm(h, "/contact", valid)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "your message has been sent")
		require.Len(t, m.sent, 1)
		assert.Equal(t, "ada@example.com", m.sent[0].Email)
	})

	t.Run("delivery is logged by the mailer only", func(t *testing.T) {
		var logs bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
		t.Cleanup(func() { slog.SetDefault(prev) })

		h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{})
		rec := postForm(h, "/contact", valid)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, logs.String(), "Contact message sent")
	})

	t.Run("validation errors", func(t *testing.T) {
		m := &fakeMailer{}
		h := newTestHandler(t, &fakeIdeas{}, m)

		rec := postForm(h, "/contact", url.Values{"name": {""}, "email": {"nope"}, "message": {""}})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `data-field="name"`)
		assert.Contains(t, body, `data-field="email"`)
		assert.Contains(t, body, `data-field="message"`)
		assert.Empty(t, m.sent)
	})

	t.Run("not configured", func(t *testing.T) {
		h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{err: mailer.ErrNotConfigured})

		rec := postForm(h, "/contact", valid)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "could not be sent")
	})

	t.Run("smtp failure", func(t *testing.T) {
		h := newTestHandler(t, &fakeIdeas{}, &fakeMailer{err: errors.New("dial tcp: refused")})

		rec := postForm(h, "/contact", valid)
		assert.Contains(t, rec.Body.String(), "error-panel")
	})
}
