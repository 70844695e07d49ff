package api

import (
	"net/http"

	"tokenwise/internal/limits"
)

// limitResponse reports a resolved token budget. Limit is null when no
// source knows the model.
type limitResponse struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model"`
	Limit    *int   `json:"limit"`
}

func (h *handler) handleLimit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.resolver == nil {
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}

	role := limits.ParseRole(r.URL.Query().Get("role"))
	settings := h.settings
	provider, model := limits.ProviderModel(settings, role)
	if model == "" {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	response := limitResponse{Provider: provider, Model: model}
	if limit, known := h.resolver.Resolve(settings, role, h.handle); known {
		response.Limit = &limit
	}
	writeLimitResponse(w, http.StatusOK, response)
}
