package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations
var (
	// ErrInvalidCountryCode indicates a country code that is not exactly 2 characters
	ErrInvalidCountryCode = errors.New("country code must be exactly 2 characters")

	// ErrNoCountries indicates an offers-by-country request built with no countries
	ErrNoCountries = errors.New("no countries specified")
)

// TransportError indicates the upstream returned a non-success HTTP status.
// It carries the status code; retrying is the caller's concern.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsTransportError reports whether err (or anything it wraps) is a TransportError
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
