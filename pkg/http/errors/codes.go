package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeUnprocessable = "unprocessable"

	// Server errors
	ErrCodeInternalError    = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUpstreamError    = "upstream_error"
)
