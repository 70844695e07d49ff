// Package api serves the session records REST API.
package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tokenwise/internal/limits"
	"tokenwise/internal/store"
)

// Pagination bounds for session listing.
const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// Config wires dependencies for the HTTP handler.
type Config struct {
	Sessions *store.Sessions
	Resolver *limits.Resolver
	Settings map[string]string
	Handle   *limits.ModelHandle
	Logger   *slog.Logger
	Now      func() time.Time
}

// NewHandler builds an HTTP handler for the sessions API.
func NewHandler(cfg Config) http.Handler {
	h := &handler{
		sessions: cfg.Sessions,
		resolver: cfg.Resolver,
		settings: cfg.Settings,
		handle:   cfg.Handle,
		logger:   cfg.Logger,
		nowFn:    cfg.Now,
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.nowFn == nil {
		h.nowFn = time.Now
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/v1/limit", h.handleLimit)
	mux.HandleFunc("/v1/sessions", h.handleSessions)
	mux.HandleFunc("/v1/sessions/", h.handleSessionByID)
	return mux
}

type handler struct {
	sessions *store.Sessions
	resolver *limits.Resolver
	settings map[string]string
	handle   *limits.ModelHandle
	logger   *slog.Logger
	nowFn    func() time.Time
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeHealthResponse(w, http.StatusOK, healthResponse{
		Status: "ok",
		Time:   h.nowFn().UTC(),
	})
}

func (h *handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if h.sessions == nil {
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	switch r.Method {
	case http.MethodPost:
		h.handleCreateSession(w, r)
	case http.MethodGet:
		h.handleListSessions(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	if h.sessions == nil {
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/sessions/")
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.handleGetSession(w, r, id)
	case http.MethodDelete:
		h.handleDeleteSession(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
