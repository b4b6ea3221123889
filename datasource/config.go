package datasource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Config represents the application configuration
type Config struct {
	// Forecast provider settings
	Meteomatics MeteomaticsConfig `json:"meteomatics"`

	// HTTP server settings
	Server ServerConfig `json:"server"`

	// Logging settings
	Log LogConfig `json:"log"`
}

// MeteomaticsConfig holds the static provider credentials
type MeteomaticsConfig struct {
	Username string        `json:"username"`
	Password string        `json:"password"`
	BaseURL  string        `json:"baseURL"`
	Timeout  time.Duration `json:"-"` // 0 means no client timeout
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port int `json:"port"`
	// StrictStatusCodes answers out-of-range dates with 422 and provider
	// data failures with 502 instead of 200.
	StrictStatusCodes bool     `json:"strictStatusCodes"`
	AllowedOrigins    []string `json:"allowedOrigins"`
}

// LogConfig holds the logging settings
type LogConfig struct {
	Debug  bool   `json:"debug"`
	Format string `json:"format"` // auto, json, text or terminal
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Meteomatics: MeteomaticsConfig{
			BaseURL: DefaultMeteomaticsURL,
		},
		Server: ServerConfig{
			Port:           5000,
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Format: "auto",
		},
	}
}

// LoadConfig loads configuration from a JSON file. A missing file yields
// the default configuration.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	return config, nil
}

// UnmarshalJSON reads the timeout as a duration string such as "10s"
func (c *MeteomaticsConfig) UnmarshalJSON(data []byte) error {
	type Alias MeteomaticsConfig
	aux := &struct {
		*Alias
		Timeout string `json:"timeout"`
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if aux.Timeout != "" {
		timeout, err := time.ParseDuration(aux.Timeout)
		if err != nil {
			return fmt.Errorf("invalid meteomatics timeout: %w", err)
		}
		c.Timeout = timeout
	}

	return nil
}

// ApplyEnv overrides configuration values from environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("METEOMATICS_USERNAME"); v != "" {
		c.Meteomatics.Username = v
	}
	if v := os.Getenv("METEOMATICS_PASSWORD"); v != "" {
		c.Meteomatics.Password = v
	}
	if v := os.Getenv("METEOMATICS_BASE_URL"); v != "" {
		c.Meteomatics.BaseURL = v
	}
	if v := os.Getenv("METEOMATICS_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid METEOMATICS_TIMEOUT: %w", err)
		}
		c.Meteomatics.Timeout = timeout
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
	return nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.Meteomatics.Username == "" {
		return fmt.Errorf("meteomatics username cannot be empty")
	}

	if c.Meteomatics.Password == "" {
		return fmt.Errorf("meteomatics password cannot be empty")
	}

	if c.Meteomatics.BaseURL == "" {
		return fmt.Errorf("meteomatics baseURL cannot be empty")
	}

	if c.Meteomatics.Timeout < 0 {
		return fmt.Errorf("meteomatics timeout must not be negative, got: %s", c.Meteomatics.Timeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got: %d", c.Server.Port)
	}

	validFormats := map[string]bool{
		"auto":     true,
		"json":     true,
		"text":     true,
		"terminal": true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s, must be one of: auto, json, text, terminal", c.Log.Format)
	}

	return nil
}
