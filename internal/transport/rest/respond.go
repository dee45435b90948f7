package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Fields  []fieldResponse `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, reason, message string, fields []domain.FieldError) {
	resp := errorResponse{Error: reason, Message: message}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, fieldResponse{Field: f.Field, Message: f.Message})
	}
	writeJSON(w, status, resp)
}

// decodeJSON reads a single JSON object from the request body.
// Malformed bodies are reported as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// queryInt64 parses a positive integer query parameter.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, domain.NewValidationError(name, "required")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return v, nil
}

// queryString returns a required, non-blank query parameter.
func queryString(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", domain.NewValidationError(name, "required")
	}
	return v, nil
}

// conflictReason names the conflict refinement carried by err.
func conflictReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyVoted):
		return "already_voted"
	case errors.Is(err, domain.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	}
	return "conflict"
}

func conflictMessage(reason string) string {
	switch reason {
	case "already_voted":
		return "member has already voted for this idea"
	case "already_assigned":
		return "staff member is already assigned to this project"
	case "invalid_transition":
		return "idea status does not allow this transition"
	}
	return "resource already exists"
}
