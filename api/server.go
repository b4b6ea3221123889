package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/cors"
	"goa.design/clue/health"
	"goa.design/clue/log"
	goahttpmiddleware "goa.design/goa/v3/http/middleware"

	"skysense/datasource"
	"skysense/models"
)

// Server represents the API server
type Server struct {
	source         datasource.ForecastSource
	server         *http.Server
	handler        http.Handler
	strictStatus   bool
	allowedOrigins []string
	now            func() time.Time
}

// Option configures a Server
type Option func(*Server)

// WithClock sets the function used to read the current date
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithStrictStatusCodes answers out-of-range dates with 422 and provider data
// failures with 502 instead of 200
func WithStrictStatusCodes(strict bool) Option {
	return func(s *Server) { s.strictStatus = strict }
}

// WithAllowedOrigins restricts CORS to the given origins ("*" allows all)
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.allowedOrigins = origins }
}

// NewServer creates a new API server. ctx carries the logger used for
// request logs.
func NewServer(ctx context.Context, source datasource.ForecastSource, port int, opts ...Option) *Server {
	server := &Server{
		source:         source,
		allowedOrigins: []string{"*"},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(server)
	}

	mux := http.NewServeMux()

	// Register the analysis endpoint
	mux.HandleFunc("/api/analyze", server.handleAnalyze)

	// Health check pings the provider when it supports it
	var pingers []health.Pinger
	if p, ok := source.(health.Pinger); ok {
		pingers = append(pingers, p)
	}
	mux.Handle("/api/health", health.Handler(health.NewChecker(pingers...)))

	var handler http.Handler = cors.New(cors.Options{
		AllowedOrigins: server.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(mux)
	handler = log.HTTP(ctx)(handler)                 // Add logger to request context and log requests
	handler = goahttpmiddleware.RequestID()(handler) // Add request ID to context

	server.handler = handler
	server.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start begins the API server
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleAnalyze handles GET /api/analyze
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	response, err := s.analyze(ctx, r.URL.Query())
	if err != nil {
		var aerr *AnalyzeError
		if !errors.As(err, &aerr) {
			aerr = &AnalyzeError{Kind: FetchFailed, Err: err}
		}
		if aerr.Err != nil && (aerr.Kind == ProviderUnavailable || aerr.Kind == FetchFailed) {
			log.Errorf(ctx, aerr.Err, "analysis failed: %s", aerr.Kind)
		}
		writeJSON(ctx, w, aerr.StatusCode(s.strictStatus), models.ErrorResponse{Error: aerr.Error()})
		return
	}

	writeJSON(ctx, w, http.StatusOK, response)
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf(ctx, err, "failed to encode response")
	}
}
