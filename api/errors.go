package api

import (
	"errors"
	"net/http"

	"skysense/datasource"
)

// ErrorKind classifies why an analysis request failed
type ErrorKind int

const (
	// MissingParameter means lat, lon or date was absent
	MissingParameter ErrorKind = iota + 1
	// InvalidDate means date was not formatted as YYYY-MM-DD
	InvalidDate
	// OutOfRange means the date is in the past or more than 15 days ahead
	OutOfRange
	// ProviderUnavailable means the provider answered without forecast data
	ProviderUnavailable
	// FetchFailed means the provider call failed in transport or parsing
	FetchFailed
)

// Client-facing messages, one per kind.
var errorMessages = map[ErrorKind]string{
	MissingParameter:    "Missing required parameters: lat, lon, date",
	InvalidDate:         "Invalid date format. Please use YYYY-MM-DD.",
	OutOfRange:          "Forecast data is only available for the next 15 days. Please select a closer date.",
	ProviderUnavailable: "Could not retrieve forecast data from the provider.",
	FetchFailed:         "An error occurred while fetching the forecast.",
}

func (k ErrorKind) String() string {
	switch k {
	case MissingParameter:
		return "missing_parameter"
	case InvalidDate:
		return "invalid_date"
	case OutOfRange:
		return "out_of_range"
	case ProviderUnavailable:
		return "provider_unavailable"
	case FetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// AnalyzeError is returned by the analysis for every failure it reports to
// the client
type AnalyzeError struct {
	Kind ErrorKind
	Err  error // underlying cause, nil for request validation failures
}

// Error returns the client-facing message
func (e *AnalyzeError) Error() string {
	return errorMessages[e.Kind]
}

func (e *AnalyzeError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error. Out-of-range dates and
// provider data failures answer 200 unless strict is set.
func (e *AnalyzeError) StatusCode(strict bool) int {
	switch e.Kind {
	case MissingParameter, InvalidDate:
		return http.StatusBadRequest
	case OutOfRange:
		if strict {
			return http.StatusUnprocessableEntity
		}
		return http.StatusOK
	case ProviderUnavailable:
		if strict {
			return http.StatusBadGateway
		}
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// classifyProviderError maps a provider error onto the client taxonomy
func classifyProviderError(err error) *AnalyzeError {
	if errors.Is(err, datasource.ErrProviderUnavailable) {
		return &AnalyzeError{Kind: ProviderUnavailable, Err: err}
	}
	return &AnalyzeError{Kind: FetchFailed, Err: err}
}
