package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"goa.design/clue/log"

	"skysense/models"
)

// Meteomatics parameter identifiers requested for every forecast.
const (
	paramTemperature = "t_2m:C"
	paramRainfall    = "precip_24h:mm"
	paramWindSpeed   = "wind_speed_10m:kmh"
)

// DefaultMeteomaticsURL is the public Meteomatics API endpoint
const DefaultMeteomaticsURL = "https://api.meteomatics.com"

// MeteomaticsProvider implements ForecastSource on top of the Meteomatics API
type MeteomaticsProvider struct {
	username   string
	password   string
	baseURL    string
	httpClient *http.Client
}

// Ensure MeteomaticsProvider implements ForecastSource
var _ ForecastSource = (*MeteomaticsProvider)(nil)

// NewMeteomaticsProvider creates a new Meteomatics provider authenticated with
// static credentials. timeout of zero leaves the client without a timeout.
func NewMeteomaticsProvider(username, password string, timeout time.Duration) *MeteomaticsProvider {
	return &MeteomaticsProvider{
		username: username,
		password: password,
		baseURL:  DefaultMeteomaticsURL,
		httpClient: &http.Client{
			Transport: log.Client(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
}

// NewMeteomaticsProviderWithHTTPClient creates a new provider with a custom HTTP client
func NewMeteomaticsProviderWithHTTPClient(httpClient *http.Client, username, password string) *MeteomaticsProvider {
	return &MeteomaticsProvider{
		username:   username,
		password:   password,
		baseURL:    DefaultMeteomaticsURL,
		httpClient: httpClient,
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (p *MeteomaticsProvider) SetBaseURL(baseURL string) {
	p.baseURL = strings.TrimRight(baseURL, "/")
}

// Name returns the provider name
func (p *MeteomaticsProvider) Name() string {
	return "Meteomatics"
}

// meteomaticsResponse represents the API response structure
type meteomaticsResponse struct {
	Data []meteomaticsSeries `json:"data"`
}

type meteomaticsSeries struct {
	Parameter   string `json:"parameter"`
	Coordinates []struct {
		Lat   float64 `json:"lat"`
		Lon   float64 `json:"lon"`
		Dates []struct {
			Date  string   `json:"date"`
			Value *float64 `json:"value"`
		} `json:"dates"`
	} `json:"coordinates"`
}

// FetchForecast gets temperature, 24h precipitation and wind speed for noon
// UTC on the given date
func (p *MeteomaticsProvider) FetchForecast(ctx context.Context, lat, lon string, date time.Time) (models.ForecastResult, error) {
	reqURL := p.buildURL(lat, lon, date)

	log.Debugf(ctx, "requesting Meteomatics forecast: %s", reqURL)

	body, err := p.get(ctx, reqURL, "forecast request")
	if err != nil {
		return models.ForecastResult{}, err
	}

	var resp meteomaticsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.ForecastResult{}, &DecodeError{Err: err}
	}

	return resp.forecastResult()
}

// Ping checks that the provider is reachable and accepts our credentials
func (p *MeteomaticsProvider) Ping(ctx context.Context) error {
	_, err := p.get(ctx, p.baseURL+"/user_stats_json", "ping")
	return err
}

// buildURL constructs {base}/{datetime}/{parameters}/{lat},{lon}/json
func (p *MeteomaticsProvider) buildURL(lat, lon string, date time.Time) string {
	dateISO := date.Format("2006-01-02") + "T12:00:00Z"
	params := strings.Join([]string{paramTemperature, paramRainfall, paramWindSpeed}, ",")
	location := url.PathEscape(lat) + "," + url.PathEscape(lon)
	return fmt.Sprintf("%s/%s/%s/%s/json", p.baseURL, dateISO, params, location)
}

// get performs one authenticated GET and returns the body of a 2xx answer.
func (p *MeteomaticsProvider) get(ctx context.Context, reqURL, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(p.username, p.password)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Operation: "reading response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

// forecastResult picks each requested series by parameter name and reads the
// first date of its first coordinate.
func (r *meteomaticsResponse) forecastResult() (models.ForecastResult, error) {
	if len(r.Data) == 0 {
		return models.ForecastResult{}, missingData("response has no data series")
	}

	temp, err := r.value(paramTemperature)
	if err != nil {
		return models.ForecastResult{}, err
	}
	rain, err := r.value(paramRainfall)
	if err != nil {
		return models.ForecastResult{}, err
	}
	wind, err := r.value(paramWindSpeed)
	if err != nil {
		return models.ForecastResult{}, err
	}
	if rain == nil || wind == nil {
		return models.ForecastResult{}, missingData("precipitation or wind value is null")
	}

	return models.ForecastResult{
		Temperature: temp,
		Rainfall:    *rain,
		WindSpeed:   *wind,
	}, nil
}

// value returns the first value of the named series, nil if the provider sent null.
func (r *meteomaticsResponse) value(parameter string) (*float64, error) {
	for _, series := range r.Data {
		if series.Parameter != parameter {
			continue
		}
		if len(series.Coordinates) == 0 {
			return nil, missingData("series %s has no coordinates", parameter)
		}
		dates := series.Coordinates[0].Dates
		if len(dates) == 0 {
			return nil, missingData("series %s has no dates", parameter)
		}
		return dates[0].Value, nil
	}
	return nil, missingData("series %s missing", parameter)
}
