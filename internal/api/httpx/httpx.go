package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wellux/bloglist-backend/internal/apperr"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error is the single translation point from the error taxonomy to HTTP.
// The switch is exhaustive over apperr kinds; anything unrecognized falls
// through to a logged 500 rather than being dropped.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindAuthentication, apperr.KindConflict, apperr.KindNotFound:
		status = http.StatusBadRequest
	case apperr.KindInvalidCredentials:
		status = http.StatusUnauthorized
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindUnknown:
		msg = "internal server error"
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "err", err)
	} else {
		slog.Info("request rejected", "status", status, "err", err)
	}
	WriteJSON(w, status, ErrorBody{Error: msg})
}
