package subformer

import (
	"encoding/json"
	"errors"
)

// Error is the base error for all Subformer API failures.
type Error struct {
	// Message is the human-readable error message.
	Message string

	// StatusCode is the HTTP status code of the failed response.
	StatusCode int

	// Code is the machine-readable error code, if the server supplied one.
	Code string

	// Data carries structured error details, if the server supplied any.
	Data any
}

// Error implements the error interface. The machine code, when present,
// prefixes the message as "[code] message".
func (e *Error) Error() string {
	if e.Code != "" {
		return "[" + e.Code + "] " + e.Message
	}
	return e.Message
}

// apiError aliases Error so the typed wrappers can embed it without the
// embedded field name shadowing the promoted Error() method.
type apiError = Error

// AuthenticationError is returned when API authentication fails (HTTP 401).
type AuthenticationError struct{ *apiError }

// NotFoundError is returned when a resource does not exist (HTTP 404).
type NotFoundError struct{ *apiError }

// RateLimitError is returned when the rate limit is exceeded (HTTP 429).
type RateLimitError struct{ *apiError }

// ValidationError is returned when request validation fails (HTTP 400).
// Data holds the structured validation details when the server provides them.
type ValidationError struct{ *apiError }

// AsError extracts the base *Error from an error returned by the client.
//
// Example:
//
//	if e, ok := subformer.AsError(err); ok {
//	    log.Printf("API error %d: %s", e.StatusCode, e.Message)
//	}
func AsError(err error) (*Error, bool) {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.apiError, true
	}
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr.apiError, true
	}
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr.apiError, true
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.apiError, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// classifyError maps a failed response onto the error taxonomy. Exactly one
// kind exists per status code; any other non-2xx status yields the base
// *Error carrying the observed status and code.
func classifyError(status int, envelope errorBody) error {
	var data any
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			data = string(envelope.Data)
		}
	}

	switch status {
	case 401:
		return &AuthenticationError{&Error{
			Message:    envelope.Message,
			StatusCode: status,
			Code:       "UNAUTHORIZED",
		}}
	case 404:
		return &NotFoundError{&Error{
			Message:    envelope.Message,
			StatusCode: status,
			Code:       "NOT_FOUND",
		}}
	case 429:
		return &RateLimitError{&Error{
			Message:    envelope.Message,
			StatusCode: status,
			Code:       "RATE_LIMIT_EXCEEDED",
		}}
	case 400:
		return &ValidationError{&Error{
			Message:    envelope.Message,
			StatusCode: status,
			Code:       "BAD_REQUEST",
			Data:       data,
		}}
	default:
		return &Error{
			Message:    envelope.Message,
			StatusCode: status,
			Code:       envelope.Code,
		}
	}
}
