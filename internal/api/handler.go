// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Shadab-Akram/FlashCard/internal/service"
	"github.com/Shadab-Akram/FlashCard/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store      store.Store
	sessions   *service.SessionService
	generation *service.GenerationService
	logger     *slog.Logger
	validate   *validator.Validate
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, sessions *service.SessionService, generation *service.GenerationService, logger *slog.Logger) *Handler {
	return &Handler{
		store:      s,
		sessions:   sessions,
		generation: generation,
		logger:     logger,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError pins a validation failure to the request field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// decodeAndValidate decodes the request body into v and runs struct-tag
// validation. On failure it writes a 400 with per-field errors and
// returns false; the caller should return immediately.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}

	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, len(verrs))
			for i, fe := range verrs {
				fields[i] = FieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				}
			}
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "validation failed",
				Errors:  fields,
			})
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request")
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	if errors.Is(err, service.ErrValidation) {
		respondError(w, http.StatusBadRequest, err.Error())
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
