package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func validConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Lookup: LookupConfig{
			Endpoint:  "wss://s.altnet.rippletest.net:51233",
			Timeout:   5 * time.Second,
			CacheSize: 16,
			CacheTTL:  time.Minute,
		},
		Explain: ExplainConfig{Language: "en"},
		Output:  OutputConfig{Format: "text"},
	}
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	mainConfigContent := `
[log]
level = "debug"
format = "json"

[lookup]
endpoint = "ws://127.0.0.1:6006"
timeout = "3s"
cache_size = 0

[explain]
language = "nl"
account = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
`
	mainConfigPath := filepath.Join(tempDir, DefaultConfigName)
	require.NoError(t, os.WriteFile(mainConfigPath, []byte(mainConfigContent), 0644))

	config, err := LoadConfigFromDir(tempDir)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "ws://127.0.0.1:6006", config.Lookup.Endpoint)
	assert.Equal(t, 3*time.Second, config.Lookup.Timeout)
	assert.False(t, config.Lookup.CachingEnabled())
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", config.Explain.Account)
	assert.Equal(t, mainConfigPath, config.GetConfigPath())

	tag, err := config.Explain.LanguageTag()
	require.NoError(t, err)
	assert.Equal(t, language.Dutch, tag)

	// Unset keys keep their defaults
	assert.Equal(t, DefaultOutputFormat, config.Output.Format)
	assert.False(t, config.JSONOutput())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, config.GetConfigPath())
	assert.Equal(t, DefaultLogLevel, config.Log.Level)
	assert.Equal(t, DefaultLookupEndpoint, config.Lookup.Endpoint)
	assert.Equal(t, 10*time.Second, config.Lookup.Timeout)
	assert.Equal(t, DefaultLookupCacheSize, config.Lookup.CacheSize)
	assert.Equal(t, 30*time.Second, config.Lookup.CacheTTL)
	assert.Equal(t, DefaultLanguage, config.Explain.Language)
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XRPLWALLET_OUTPUT_FORMAT", "json")
	t.Setenv("XRPLWALLET_LOOKUP_ENDPOINT", "wss://example.org")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, config.JSONOutput())
	assert.Equal(t, "wss://example.org", config.Lookup.Endpoint)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format must be 'text' or 'json'")
}

func TestConfigValidation(t *testing.T) {
	assert.NoError(t, ValidateConfig(validConfig()))
}

func TestConfigValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log format must be"},
		{"endpoint scheme", func(c *Config) { c.Lookup.Endpoint = "https://s1.ripple.com" }, "endpoint must use ws or wss"},
		{"endpoint host", func(c *Config) { c.Lookup.Endpoint = "wss://" }, "endpoint has no host"},
		{"timeout", func(c *Config) { c.Lookup.Timeout = 0 }, "timeout must be positive"},
		{"cache size", func(c *Config) { c.Lookup.CacheSize = -1 }, "cache_size must be non-negative"},
		{"cache ttl", func(c *Config) { c.Lookup.CacheTTL = 0 }, "cache_ttl must be positive"},
		{"language", func(c *Config) { c.Explain.Language = "fr" }, "has no catalog"},
		{"account", func(c *Config) { c.Explain.Account = "rNotAnAddress" }, "not a valid classic address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)
			err := ValidateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCacheTTLIgnoredWithoutCache(t *testing.T) {
	config := validConfig()
	config.Lookup.CacheSize = 0
	config.Lookup.CacheTTL = 0
	assert.NoError(t, ValidateConfig(config))
}

func TestSaveExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigName)
	require.NoError(t, SaveExampleConfig(path))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultLookupEndpoint, config.Lookup.Endpoint)
	assert.Equal(t, DefaultLogFormat, config.Log.Format)
}
