package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// createSessionRequest is the optional POST body for session creation.
type createSessionRequest struct {
	Metadata map[string]any `json:"metadata"`
}

func (h *handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}
	}

	session, err := h.sessions.Create(r.Context(), req.Metadata)
	if err != nil {
		h.logger.Error("create session failed", "error", err)
		writeError(w, http.StatusInternalServerError, "database_error")
		return
	}
	writeSessionResponse(w, http.StatusCreated, session)
}

func (h *handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	sessions, total, err := h.sessions.List(r.Context(), offset, limit)
	if err != nil {
		h.logger.Error("list sessions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "database_error")
		return
	}
	writeSessionsResponse(w, http.StatusOK, paginatedSessions{
		Total:  total,
		Items:  sessions,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *handler) handleGetSession(w http.ResponseWriter, r *http.Request, id string) {
	session, found, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get session failed", "session_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "database_error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeSessionResponse(w, http.StatusOK, session)
}

func (h *handler) handleDeleteSession(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := h.sessions.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("delete session failed", "session_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "database_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parsePagination reads offset and limit query parameters with the API's
// bounds: offset >= 0, 1 <= limit <= 100, limit defaulting to 10.
func parsePagination(r *http.Request) (offset, limit int, err error) {
	offset, err = intQuery(r, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, errors.New("invalid offset")
	}
	limit, err = intQuery(r, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		return 0, 0, errors.New("invalid limit")
	}
	return offset, limit, nil
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
