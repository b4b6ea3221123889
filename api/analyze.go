package api

import (
	"context"
	"net/url"
	"time"

	"goa.design/clue/log"

	"skysense/advice"
	"skysense/models"
)

// maxForecastDays is how far ahead the provider forecasts.
const maxForecastDays = 15

// parseQuery validates the request parameters and builds the forecast query.
func (s *Server) parseQuery(values url.Values) (models.ForecastQuery, error) {
	lat := values.Get("lat")
	lon := values.Get("lon")
	dateStr := values.Get("date")
	if lat == "" || lon == "" || dateStr == "" {
		return models.ForecastQuery{}, &AnalyzeError{Kind: MissingParameter}
	}

	activity := models.DefaultActivity
	if values.Has("activity") {
		activity = values.Get("activity")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return models.ForecastQuery{}, &AnalyzeError{Kind: InvalidDate, Err: err}
	}

	if days := daysBetween(s.now(), date); days < 0 || days > maxForecastDays {
		return models.ForecastQuery{}, &AnalyzeError{Kind: OutOfRange}
	}

	return models.ForecastQuery{
		Latitude:  lat,
		Longitude: lon,
		Date:      date,
		Activity:  activity,
	}, nil
}

// analyze runs one request: validate, fetch once, build the advice.
func (s *Server) analyze(ctx context.Context, values url.Values) (models.AdviceResponse, error) {
	query, err := s.parseQuery(values)
	if err != nil {
		return models.AdviceResponse{}, err
	}

	forecast, err := s.source.FetchForecast(ctx, query.Latitude, query.Longitude, query.Date)
	if err != nil {
		return models.AdviceResponse{}, classifyProviderError(err)
	}

	text := advice.Generate(query.Activity, forecast.Temperature, forecast.Rainfall, forecast.WindSpeed)
	log.Info(ctx,
		log.KV{K: "msg", V: "advice generated"},
		log.KV{K: "date", V: query.Date.Format("2006-01-02")},
		log.KV{K: "indoor", V: advice.IsIndoor(query.Activity)})

	return models.AdviceResponse{
		Source:  s.source.Name() + " Forecast",
		Advice:  text,
		Details: forecast,
	}, nil
}

// daysBetween returns the number of calendar days from now's date to date.
func daysBetween(now, date time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	selected := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(selected.Sub(today).Hours() / 24)
}
