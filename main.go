package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"goa.design/clue/log"

	"skysense/api"
	"skysense/datasource"
)

func main() {
	// Parse command line arguments
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug logs")
	strictStatus := flag.Bool("strict-status", false, "Use 4xx/5xx status codes for out-of-range dates and provider failures")
	flag.Parse()

	// Logger used until the configured one is ready
	bootCtx := log.Context(context.Background(), log.WithFormat(log.FormatText))

	// Load environment variables from .env file
	envErr := godotenv.Load()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		fatal(bootCtx, err, "failed to load configuration")
	}
	if err := config.ApplyEnv(); err != nil {
		fatal(bootCtx, err, "failed to read environment")
	}
	if *port != 0 {
		config.Server.Port = *port
	}
	if *debug {
		config.Log.Debug = true
	}
	if *strictStatus {
		config.Server.StrictStatusCodes = true
	}

	ctx := newLogContext(config.Log)
	if envErr != nil {
		log.Debugf(ctx, "no .env file loaded: %v", envErr)
	}

	if err := config.Validate(); err != nil {
		fatal(ctx, err, "invalid configuration")
	}

	// Create the forecast provider
	provider := datasource.NewMeteomaticsProvider(
		config.Meteomatics.Username,
		config.Meteomatics.Password,
		config.Meteomatics.Timeout,
	)
	provider.SetBaseURL(config.Meteomatics.BaseURL)

	// Create API server
	server := api.NewServer(ctx, provider, config.Server.Port,
		api.WithStrictStatusCodes(config.Server.StrictStatusCodes),
		api.WithAllowedOrigins(config.Server.AllowedOrigins),
	)

	// Set up channels for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	errc := make(chan error, 1)

	// Start the API server in a goroutine
	go func() {
		log.Printf(ctx, "starting API server on %s using %s", server.Addr(), provider.Name())
		errc <- server.Start()
	}()

	select {
	case sig := <-shutdownChan:
		log.Printf(ctx, "shutting down due to %s signal", sig)
	case err := <-errc:
		if err != nil {
			fatal(ctx, err, "server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf(ctx, err, "error during server shutdown")
	}

	log.Printf(ctx, "shutdown complete")
}

// newLogContext creates the root logger context from the logging settings
func newLogContext(cfg datasource.LogConfig) context.Context {
	var format func(*log.Entry) []byte
	switch cfg.Format {
	case "json":
		format = log.FormatJSON
	case "text":
		format = log.FormatText
	case "terminal":
		format = log.FormatTerminal
	default:
		format = log.FormatJSON
		if log.IsTerminal() {
			format = log.FormatTerminal
		}
	}

	ctx := log.Context(context.Background(), log.WithFormat(format))
	ctx = log.With(ctx, log.KV{K: "svc", V: "skysense"})
	if cfg.Debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}
	return ctx
}

// fatal logs err and exits
func fatal(ctx context.Context, err error, msg string) {
	log.Errorf(ctx, err, "%s", msg)
	os.Exit(1)
}
