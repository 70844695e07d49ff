package api

import (
	"encoding/json"
	"net/http"
	"time"

	"tokenwise/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// paginatedSessions is the list response shape: total count plus the
// requested page and the pagination parameters that produced it.
type paginatedSessions struct {
	Total  int             `json:"total"`
	Items  []store.Session `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

func writeHealthResponse(w http.ResponseWriter, status int, payload healthResponse) {
	writeJSON(w, status, payload)
}

func writeSessionResponse(w http.ResponseWriter, status int, payload store.Session) {
	writeJSON(w, status, payload)
}

func writeLimitResponse(w http.ResponseWriter, status int, payload limitResponse) {
	writeJSON(w, status, payload)
}

func writeSessionsResponse(w http.ResponseWriter, status int, payload paginatedSessions) {
	if payload.Items == nil {
		payload.Items = []store.Session{}
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
