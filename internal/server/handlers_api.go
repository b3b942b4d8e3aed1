package server

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleAPIProjects(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, s.site.QueryProjects(projectQuery(r)))
}

func jsonResponse(w http.ResponseWriter, data any) {
	jsonStatus(w, http.StatusOK, data)
}

func jsonStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	jsonStatus(w, status, map[string]string{"error": message})
}
