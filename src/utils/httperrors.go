package utils

import (
	"fmt"
)

// HTTPError defines a custom error structure that includes an HTTP status code and message.
// It is returned when the remote service answered the request with a rejection status.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

// Implement the Error() method to satisfy the error interface
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError instance with a custom status code and message
func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// UnreachableError is returned when no response was obtained from the remote
// service at all: connection failures, DNS errors and client-side timeouts.
// A rejection status from a reachable service is an HTTPError instead.
type UnreachableError struct {
	URL string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("remote service unreachable: %s: %v", e.URL, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// NewUnreachableError wraps the transport failure err for the given URL
func NewUnreachableError(url string, err error) error {
	return &UnreachableError{
		URL: url,
		Err: err,
	}
}
