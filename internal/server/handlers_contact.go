package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arignang/portfolio/internal/mailer"
)

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	msg := mailer.Message{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("message"),
	}

	if err := msg.Validate(); err != nil {
		var verr *mailer.ValidationError
		if !errors.As(err, &verr) {
			slog.Error("Contact validation failed", "error", err)
			http.Error(w, "Internal error", 500)
			return
		}
		s.renderPartial(w, "contact_result", map[string]any{
			"Errors":  verr.Fields,
			"Message": msg,
		})
		return
	}

	if err := s.mail.Send(r.Context(), msg); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			slog.Warn("Contact form submitted but mail is not configured")
		} else {
			slog.Error("Failed to send contact message", "error", err)
		}
		s.renderPartial(w, "contact_result", map[string]any{
			"Failed":  true,
			"Email":   s.site.Profile.Email,
			"Message": msg,
		})
		return
	}

	s.renderPartial(w, "contact_result", map[string]any{
		"Sent": true,
		"Name": msg.Name,
	})
}
