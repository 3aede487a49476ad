package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API requests
// and responses, and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// ChatTurnRequest is the DTO for one chat turn. The conversation log is
// optional; when omitted the stored log is used.
type ChatTurnRequest struct {
	Message   string                 `json:"message" validate:"required,min=1,max=4000" example:"Suggest a high-protein lunch"`
	UserID    string                 `json:"user_id" validate:"required" example:"user-42"`
	PatientID string                 `json:"patient_id,omitempty" example:"patient-7"`
	Log       *model.ConversationLog `json:"conversation_log,omitempty"`
}

// ChatTurnResponse mirrors the gateway contract: both response encodings,
// the JSON-encoded memory, the updated log, and any filtered items.
type ChatTurnResponse struct {
	FinalResponse string                `json:"final_response"`
	FinalMarkdown string                `json:"final_response_readme"`
	Memory        string                `json:"memory"`
	Log           model.ConversationLog `json:"conversation_log"`
	RemovedItems  []model.RemovedItem   `json:"removed_items,omitempty"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps custom business-layer errors to appropriate HTTP status codes and formats
// a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// For validation errors, the error message from the service layer
		// is already descriptive and user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	case errors.Is(err, app_errors.ErrUpstream):
		statusCode = http.StatusBadGateway
		message = "The assistant could not be reached. Please try again."
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
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
