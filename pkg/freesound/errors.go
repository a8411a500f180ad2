package freesound

import "fmt"

// RequestError reports that a request could not be completed: DNS,
// connection, timeout, cancellation or a failed body read.
type RequestError struct {
	// Op names the failed step, e.g. "execute request".
	Op string

	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain support.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// AuthError reports that the API key was rejected during ValidateKey.
type AuthError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Message)
}

// APIError reports a non-success status, or a success response whose body
// did not decode into the expected shape.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the server-supplied error message when one could be
	// recovered from the body, otherwise a short description.
	Message string

	// Body is the raw response body.
	Body string

	// Err is the decode failure, if any.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("api error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap returns the decode error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}
