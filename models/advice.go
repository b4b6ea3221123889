package models

// AdviceResponse is the body returned by a successful analysis
type AdviceResponse struct {
	Source  string         `json:"source"`
	Advice  string         `json:"advice"`
	Details ForecastResult `json:"details"`
}

// ErrorResponse is the body returned for every failed analysis
type ErrorResponse struct {
	Error string `json:"error"`
}
