package models

import (
	"time"
)

// DefaultActivity is used when the caller does not describe an activity
const DefaultActivity = "an outdoor event"

// ForecastQuery represents a single advice request
type ForecastQuery struct {
	Latitude  string    // passed through to the provider as given
	Longitude string    // passed through to the provider as given
	Date      time.Time // calendar date the forecast is for
	Activity  string    // free-text activity description
}

// ForecastResult represents the forecast values used to build advice
type ForecastResult struct {
	Temperature *float64 `json:"temp"`     // in Celsius at 2m, nil when the provider has no value
	Rainfall    float64  `json:"rain_mm"`  // 24h accumulation in mm
	WindSpeed   float64  `json:"wind_kph"` // at 10m in km/h
}
