package datasource

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when the provider answered but did not
// include the forecast data we asked for
var ErrProviderUnavailable = errors.New("forecast data unavailable from provider")

// APIError represents a non-2xx answer from the provider
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrProviderUnavailable.
func (e *APIError) Unwrap() error {
	return ErrProviderUnavailable
}

// NetworkError represents a transport failure talking to the provider
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a provider body that could not be parsed
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse provider response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// missingData builds an ErrProviderUnavailable with the reason attached.
func missingData(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProviderUnavailable, fmt.Sprintf(format, args...))
}
