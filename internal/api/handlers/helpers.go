package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"route-solver-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("req_id=%s encode failed: method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

type validationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

func writeValidationError(w http.ResponseWriter, r *http.Request, details []string) {
	writeJSON(w, r, http.StatusUnprocessableEntity, validationErrorResponse{
		Error:   "validation failed",
		Details: details,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
