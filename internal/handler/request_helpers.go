package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hexplot/mergefarm/internal/logger"
)

// ValidationErrorResponse carries per-field validation failures
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and runs
// struct validation. On failure it writes the error response itself and
// returns the error so callers can simply return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Failed to decode request body", "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Request validation failed", "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestError,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}
