// Package errors holds the domain sentinel errors shared by the service and
// API layers. Services wrap them with context; the API layer matches them
// with errors.Is and picks the HTTP status.
package errors

import "errors"

var (
	// ErrNotFound: the chat (or other resource) does not exist. Maps to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation: input failed a business rule. Maps to 400 and the
	// wrapped message is shown to the client.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable: the language model backend could not be reached. Maps to 502.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrInternal is a generic failure whose details must not reach the client. Maps to 500.
	ErrInternal = errors.New("internal server error")
)
