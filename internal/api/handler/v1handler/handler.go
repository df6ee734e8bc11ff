// Package v1handler implements the v1 JSON API for the curation engine. It is
// a thin request/response mapping over curation.Curator: all business rules
// live in the engine, the handlers only decode input, call the engine and
// translate semantic errors into HTTP status codes.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"curator/internal/curation"
	"curator/pkg/logger"
	"curator/pkg/serrors"

	"go.uber.org/zap"
)

// Deps carries the collaborators handlers need.
type Deps struct {
	// Curator is the scheduling lifecycle engine.
	Curator curation.Curator
}

// Handler serves the v1 API routes.
type Handler struct {
	curator curation.Curator
}

// New constructs a Handler from its dependencies.
func New(deps Deps) *Handler {
	return &Handler{curator: deps.Curator}
}

// Register mounts all v1 routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/content-items", h.createContentItem)
	mux.HandleFunc("GET /v1/schedule", h.listSchedule)
	mux.HandleFunc("POST /v1/schedule", h.schedule)
	mux.HandleFunc("DELETE /v1/schedule/{id}", h.unschedule)
	mux.HandleFunc("POST /v1/schedule/{id}/reschedule", h.reschedule)
	mux.HandleFunc("POST /v1/schedule/reviews", h.markReviewed)
	mux.HandleFunc("GET /v1/surfaces", h.listSurfaces)
}

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status. Encoding failures are logged,
// the status line has already been sent at that point.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))
	}
}

// writeError maps semantic error kinds onto HTTP status codes. Unexpected
// errors are logged and reported as an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	var sErr *serrors.Error
	if errors.As(err, &sErr) {
		switch {
		case errors.Is(err, serrors.ErrBadRequest):
			status = http.StatusBadRequest
		case errors.Is(err, serrors.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, serrors.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, serrors.ErrUnavailable):
			status = http.StatusServiceUnavailable
		}
		if status != http.StatusInternalServerError {
			msg = sErr.Message()
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	}

	writeJSON(w, r, status, errorBody{Error: msg})
}

// decode reads the request body into v and rejects malformed JSON.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
