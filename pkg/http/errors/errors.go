package errors

import (
	"encoding/json"
	"net/http"

	"github.com/triviahub/trivia-api/internal/domain"
)

// ErrorResponse is the standardized failure envelope. The numeric Error
// field carries the HTTP status so browser clients can branch without
// inspecting transport metadata.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError writes a standardized error response.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Code:    code,
		Message: message,
	})
}

// RespondBadRequest writes a bad request error response.
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondNotFound writes a not found error response.
func RespondNotFound(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusNotFound, code, message)
}

// RespondMethodNotAllowed writes a method not allowed error response.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
}

// RespondUnprocessable writes an unprocessable entity error response.
func RespondUnprocessable(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusUnprocessableEntity, code, message)
}

// RespondInternalError writes an internal server error response.
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// RespondDomainError classifies a core failure and writes the matching
// status: validation failures become 400, unknown resources 404, store
// write failures 422, anything else 500.
func RespondDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		RespondBadRequest(w, ErrCodeValidationFailed, err.Error())
	case domain.IsNotFound(err):
		RespondNotFound(w, ErrCodeNotFound, err.Error())
	case domain.IsUnprocessable(err):
		RespondUnprocessable(w, ErrCodeUnprocessable, err.Error())
	default:
		RespondInternalError(w, err.Error())
	}
}
