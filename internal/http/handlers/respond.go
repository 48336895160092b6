package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/http/dto"
	"task-status-viewer/internal/service"
)

// User-facing messages for each error kind.
const (
	msgMalformedPath = "invalid URL format"
	msgNotFound      = "update not found"
	msgUnauthorized  = "invalid access, please open this page from the chatbot"
	msgInvalidAccess = "invalid access"
	msgPageNotFound  = "page not found"
	msgInternal      = "internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Code: status, Message: message})
}

// writeServiceError converts any service error into the {code, message}
// shape. Nothing else reaches the page layer.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := errorResponse(err)

	ev := zerolog.Ctx(r.Context()).Debug()
	if code >= http.StatusInternalServerError {
		ev = zerolog.Ctx(r.Context()).Error()
	}
	ev.Err(err).Int("code", code).Msg("request failed")

	writeError(w, code, msg)
}

func errorResponse(err error) (int, string) {
	var fetchErr *service.StatusFetchError

	switch {
	case errors.As(err, &fetchErr):
		return fetchErr.Code, fetchErr.Message
	case errors.Is(err, service.ErrMalformedPath):
		return http.StatusBadRequest, msgMalformedPath
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusForbidden, msgUnauthorized
	case errors.Is(err, service.ErrInvalidAccess):
		return http.StatusBadRequest, msgInvalidAccess
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
