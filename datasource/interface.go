package datasource

import (
	"context"
	"time"

	"skysense/models"
)

// ForecastSource defines the interface for any forecast provider used to
// build activity advice
type ForecastSource interface {
	// Name returns the provider's name
	Name() string

	// FetchForecast fetches the forecast for the given coordinates at noon UTC
	// on the given date. Implementations make at most one outbound call.
	FetchForecast(ctx context.Context, lat, lon string, date time.Time) (models.ForecastResult, error)
}
