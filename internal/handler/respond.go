package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pixiapp/pixi-go/internal/apperror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its HTTP status and a client-safe message.
// Wrapped causes are logged, never serialized.
func writeError(w http.ResponseWriter, err error) {
	ae := apperror.From(err)
	if ae.Status() >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, ae.Status(), map[string]string{"message": ae.Message})
}
