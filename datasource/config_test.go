package datasource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultMeteomaticsURL, config.Meteomatics.BaseURL)
	assert.Equal(t, 5000, config.Server.Port)
	assert.Equal(t, []string{"*"}, config.Server.AllowedOrigins)
	assert.False(t, config.Server.StrictStatusCodes)
	assert.Zero(t, config.Meteomatics.Timeout)
	assert.Equal(t, "auto", config.Log.Format)
}

func TestLoadConfigFromReader(t *testing.T) {
	input := `{
	  "meteomatics": {"username": "alice", "password": "pw", "timeout": "15s"},
	  "server": {"port": 8080, "strictStatusCodes": true}
	}`

	config, err := LoadConfigFromReader(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "alice", config.Meteomatics.Username)
	assert.Equal(t, "pw", config.Meteomatics.Password)
	assert.Equal(t, 15*time.Second, config.Meteomatics.Timeout)
	assert.Equal(t, DefaultMeteomaticsURL, config.Meteomatics.BaseURL)
	assert.Equal(t, 8080, config.Server.Port)
	assert.True(t, config.Server.StrictStatusCodes)
	assert.NoError(t, config.Validate())
}

func TestLoadConfigFromReaderInvalid(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader(`{"meteomatics": {"timeout": "soon"}}`))
	assert.Error(t, err)

	_, err = LoadConfigFromReader(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"port": 9000}}`), 0o600))

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, config.Server.Port)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("METEOMATICS_USERNAME", "env-user")
	t.Setenv("METEOMATICS_PASSWORD", "env-pass")
	t.Setenv("METEOMATICS_BASE_URL", "http://localhost:9999")
	t.Setenv("METEOMATICS_TIMEOUT", "5s")
	t.Setenv("PORT", "7000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

	config := DefaultConfig()
	require.NoError(t, config.ApplyEnv())

	assert.Equal(t, "env-user", config.Meteomatics.Username)
	assert.Equal(t, "env-pass", config.Meteomatics.Password)
	assert.Equal(t, "http://localhost:9999", config.Meteomatics.BaseURL)
	assert.Equal(t, 5*time.Second, config.Meteomatics.Timeout)
	assert.Equal(t, 7000, config.Server.Port)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, config.Server.AllowedOrigins)
}

func TestApplyEnvInvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	assert.Error(t, DefaultConfig().ApplyEnv())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Meteomatics.Username = "user"
		c.Meteomatics.Password = "pass"
		return c
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing username", func(c *Config) { c.Meteomatics.Username = "" }, true},
		{"missing password", func(c *Config) { c.Meteomatics.Password = "" }, true},
		{"missing base url", func(c *Config) { c.Meteomatics.BaseURL = "" }, true},
		{"negative timeout", func(c *Config) { c.Meteomatics.Timeout = -time.Second }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
