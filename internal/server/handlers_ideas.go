package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/arignang/portfolio/internal/ideas"
)

const maxIdeaBodyBytes = 16 << 10

type ideaErrorBody struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type ideaResponse struct {
	RequestID string       `json:"request_id"`
	Ideas     []ideas.Idea `json:"ideas"`
}

type ideaFailure struct {
	RequestID string        `json:"request_id,omitempty"`
	Error     ideaErrorBody `json:"error"`
}

// runIdeas tags the request context with a fresh request ID and runs one
// idea request. The returned kind is meaningful only when err is non-nil.
func (s *Server) runIdeas(r *http.Request, topic string) (string, []ideas.Idea, ideas.Kind, error) {
	requestID := uuid.NewString()
	ctx := ideas.WithRequestID(r.Context(), requestID)
	result, err := s.ideas.Request(ctx, topic)
	if err != nil {
		return requestID, nil, ideas.KindOf(err), err
	}
	return requestID, result, ideas.KindUnknown, nil
}

// handleIdeas serves the generator form. HTMX only swaps 2xx responses, so
// failures are rendered as an error panel with status 200.
func (s *Server) handleIdeas(w http.ResponseWriter, r *http.Request) {
	topic := r.FormValue("topic")
	if err := ideas.ValidateTopic(topic); err != nil {
		s.renderPartial(w, "idea_results", map[string]any{
			"Topic":      topic,
			"Validation": ideas.EmptyTopicMessage,
		})
		return
	}

	requestID, result, kind, err := s.runIdeas(r, topic)
	w.Header().Set("X-Request-ID", requestID)
	data := map[string]any{
		"Topic":     topic,
		"RequestID": requestID,
	}
	if err != nil {
		data["ErrorTitle"] = kind.Title()
		data["ErrorMessage"] = kind.Message()
	} else {
		data["Ideas"] = result
	}
	s.renderPartial(w, "idea_results", data)
}

func (s *Server) handleAPIIdeas(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic string `json:"topic"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxIdeaBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := ideas.ValidateTopic(body.Topic); err != nil {
		jsonStatus(w, http.StatusBadRequest, ideaFailure{
			Error: ideaErrorBody{
				Kind:    "empty_topic",
				Title:   "Missing Topic",
				Message: ideas.EmptyTopicMessage,
			},
		})
		return
	}

	requestID, result, kind, err := s.runIdeas(r, body.Topic)
	w.Header().Set("X-Request-ID", requestID)
	if err != nil {
		jsonStatus(w, kind.HTTPStatus(), ideaFailure{
			RequestID: requestID,
			Error: ideaErrorBody{
				Kind:    kind.String(),
				Title:   kind.Title(),
				Message: kind.Message(),
			},
		})
		return
	}

	if result == nil {
		result = []ideas.Idea{}
	}
	jsonResponse(w, ideaResponse{RequestID: requestID, Ideas: result})
}
