package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kunalverma25/gomart/internal/auth"
	"github.com/kunalverma25/gomart/internal/service"
	"github.com/kunalverma25/gomart/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// statusFromError is the single place where domain errors become HTTP
// statuses. Anything unrecognized is reported as an opaque 500; the real
// cause is logged server-side, never sent to the client.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrDuplicateEmail):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, auth.ErrTokenMissing):
		return http.StatusUnauthorized, "No token provided"
	case errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, auth.ErrTokenMalformed), errors.Is(err, auth.ErrTokenInvalidSignature):
		return http.StatusUnauthorized, "Invalid token"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
