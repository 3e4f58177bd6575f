package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stocklens/domain/core"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	case core.IsDataError(err):
		// Expected input states; the client renders a "not enough data" hint.
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func queryBool(r *http.Request, key string, fallback bool) bool {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			return parsed
		}
	}
	return fallback
}
