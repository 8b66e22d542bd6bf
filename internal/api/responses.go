package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "sup-chat/backend/internal/errors"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by operations that have no resource to send back.
type StatusResponse struct {
	Status string `json:"status"`
}

// ChangeResponse reports the outcome of a rename or delete. Success is true
// whenever the store accepted the call; Changed tells whether a chat matched.
type ChangeResponse struct {
	Success bool `json:"success" example:"true"`
	Changed bool `json:"changed" example:"true"`
}

// CreateChatRequest is the body of POST /api/chats. An empty name gets the default.
type CreateChatRequest struct {
	Name string `json:"name" validate:"max=100" example:"Font talk"`
}

// RenameChatRequest is the body of PUT /api/chats/{chatID}.
type RenameChatRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"My Custom Chat Title"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Connections int    `json:"connections" example:"2"`
}

// respondWithError maps domain errors to HTTP status codes. Only validation
// messages are passed through to the client; everything else gets a generic
// message and the detail goes to the log.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrUnavailable):
		statusCode = http.StatusBadGateway
		message = "The language model service is unavailable."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON reads a request body into dst. Failures are validation errors.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return invalidPayload(err)
	}
	return nil
}
