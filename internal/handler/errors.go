package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// badRequest reports a request rejected before reaching the service layer,
// such as a malformed query parameter or body.
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "bad_request", message)
}

// serviceError maps a service error onto a response. Unknown errors are
// logged and hidden behind a generic 500.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage drops the "pkg.Type.Method: " wrapping and the sentinel text
// from err, keeping the human-readable detail.
// e.g. "service.SearchService.Search: validation error: date is required" → "date is required"
func unwrapMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrNotFound} {
		marker := sentinel.Error()
		i := strings.LastIndex(msg, marker)
		if i < 0 {
			continue
		}
		if rest := strings.TrimPrefix(msg[i+len(marker):], ": "); rest != "" {
			return rest
		}
		return marker
	}
	return msg
}
