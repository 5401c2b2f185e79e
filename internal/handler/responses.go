package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hexplot/mergefarm/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Board messages
	ErrMsgInvalidCellError = "That cell does not exist"
	ErrMsgCellLockedError  = "That cell is locked"

	// Shop messages
	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgUnknownUpgradeError   = "Unknown upgrade"
	ErrMsgInvalidCategoryError  = "Invalid upgrade category"
	ErrMsgUpgradeMaxedError     = "Upgrade is already maxed"
	ErrMsgCategoryMismatchError = "Upgrade does not belong to that category"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. It converts internal service errors to appropriate status
// codes and messages that a client can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCellIndex):
		return http.StatusBadRequest, ErrMsgInvalidCellError
	case errors.Is(err, domain.ErrCellLocked):
		return http.StatusBadRequest, ErrMsgCellLockedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusNotFound, ErrMsgUnknownUpgradeError
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, ErrMsgInvalidCategoryError
	case errors.Is(err, domain.ErrUpgradeMaxed):
		return http.StatusConflict, ErrMsgUpgradeMaxedError
	case errors.Is(err, domain.ErrCategoryMismatch):
		return http.StatusBadRequest, ErrMsgCategoryMismatchError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Surface short custom error messages as-is; anything long or
	// system-level falls back to the generic message.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
