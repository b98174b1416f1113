package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/eventify/eventify-go/internal/client"
	"github.com/eventify/eventify-go/internal/service"
)

// ErrorResponse is the structured error payload returned by every failing
// endpoint.
type ErrorResponse struct {
	Status           int       `json:"status"`
	Error            string    `json:"error"`
	Message          string    `json:"message"`
	Path             string    `json:"path"`
	Timestamp        time.Time `json:"timestamp"`
	ValidationErrors []string  `json:"validationErrors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
		Timestamp: time.Now(),
	})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, fields []string) {
	status := http.StatusBadRequest
	writeJSON(w, status, ErrorResponse{
		Status:           status,
		Error:            http.StatusText(status),
		Message:          "validation failed",
		Path:             r.URL.Path,
		Timestamp:        time.Now(),
		ValidationErrors: fields,
	})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// missing entities to 404, authorization and bad input to 400, ownership
// and time-window violations to 403, uniqueness conflicts to 409 and
// external lookup failures to 502. Anything unclassified is a 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeValidationError(w, r, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrEventNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidPin), errors.Is(err, service.ErrUnknownCEP):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrForbiddenUpdate),
		errors.Is(err, service.ErrForbiddenRegister),
		errors.Is(err, service.ErrImpossibleUnregister):
		writeError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrCPFTaken):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrCEPNotFound):
		// ErrCEPNotFound only reaches the boundary from the forecast
		// re-resolution; lifecycle operations translate it to
		// ErrUnknownCEP before it gets here.
		writeError(w, r, http.StatusBadGateway, "external service error: "+err.Error())
	default:
		slog.Error("unexpected error", "path", r.URL.Path, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
