// Package httputil writes the JSON responses shared by the HTTP handlers.
package httputil

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jrschumacher/gpc-ping/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is a body carrying only a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes data as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteError writes an ErrorResponse. err may be nil; when set its text is
// returned to the caller as the error field.
func WriteError(w http.ResponseWriter, status int, message string, err error, logFields ...any) {
	response := ErrorResponse{Message: message}
	if err != nil {
		response.Error = err.Error()
	}
	WriteJSON(w, status, response)

	logFields = append([]any{"status", status, "message", message, "error", err}, logFields...)
	if status >= http.StatusInternalServerError {
		logger.Error("HTTP error response", logFields...)
	} else {
		logger.Warn("HTTP error response", logFields...)
	}
}

// WriteMessage writes a 200 OK MessageResponse.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteSuccess writes a 200 OK response with JSON data
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}
