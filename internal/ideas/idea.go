// Package ideas generates research project ideas for a topic through a
// text-generation provider and validates what comes back.
package ideas

import (
	"encoding/json"
	"strings"

	"github.com/arignang/portfolio/internal/ai"
)

// Idea is a single research project suggestion.
type Idea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Parse turns raw model output into ideas. Entries that do not have the
// expected field types are dropped; the rest keep their order.
func Parse(text string) ([]Idea, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &Error{Kind: KindEmptyResponse}
	}

	var parsed any
	if err := json.Unmarshal([]byte(ai.CleanJSON(text)), &parsed); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Err: err}
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, &Error{Kind: KindUnexpectedShape}
	}

	result := Filter(items)
	if len(result) == 0 && len(items) > 0 {
		return nil, &Error{Kind: KindUnexpectedShape}
	}
	return result, nil
}

// Filter keeps the candidates that pass IsValid, in order. It never returns nil.
func Filter(items []any) []Idea {
	result := make([]Idea, 0, len(items))
	for _, item := range items {
		if idea, ok := IsValid(item); ok {
			result = append(result, idea)
		}
	}
	return result
}

// IsValid reports whether candidate is an object with a string title, a string
// description and a keywords array made only of strings. Empty strings and
// empty keyword lists are accepted.
func IsValid(candidate any) (Idea, bool) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return Idea{}, false
	}

	title, ok := obj["title"].(string)
	if !ok {
		return Idea{}, false
	}
	description, ok := obj["description"].(string)
	if !ok {
		return Idea{}, false
	}
	rawKeywords, ok := obj["keywords"].([]any)
	if !ok {
		return Idea{}, false
	}

	keywords := make([]string, 0, len(rawKeywords))
	for _, kw := range rawKeywords {
		s, ok := kw.(string)
		if !ok {
			return Idea{}, false
		}
		keywords = append(keywords, s)
	}

	return Idea{Title: title, Description: description, Keywords: keywords}, true
}
