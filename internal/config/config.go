package config

import (
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
)

// Config represents the complete xrplwallet configuration
type Config struct {
	Log     LogConfig     `toml:"log" mapstructure:"log"`
	Lookup  LookupConfig  `toml:"lookup" mapstructure:"lookup"`
	Explain ExplainConfig `toml:"explain" mapstructure:"explain"`
	Output  OutputConfig  `toml:"output" mapstructure:"output"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// LogConfig controls the process logger
type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `toml:"format" mapstructure:"format"` // console or json
}

// LookupConfig configures the websocket ledger lookup used by validation
type LookupConfig struct {
	Endpoint  string        `toml:"endpoint" mapstructure:"endpoint"`
	Timeout   time.Duration `toml:"timeout" mapstructure:"timeout"`
	CacheSize int           `toml:"cache_size" mapstructure:"cache_size"` // 0 disables caching
	CacheTTL  time.Duration `toml:"cache_ttl" mapstructure:"cache_ttl"`
}

// CachingEnabled reports whether lookups should go through the cache
func (l LookupConfig) CachingEnabled() bool {
	return l.CacheSize > 0
}

// ExplainConfig holds the default viewpoint of explanations
type ExplainConfig struct {
	Language string `toml:"language" mapstructure:"language"`
	Account  string `toml:"account" mapstructure:"account"`
}

// LanguageTag returns the configured explanation language
func (e ExplainConfig) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(e.Language)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", e.Language, err)
	}
	return tag, nil
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format string `toml:"format" mapstructure:"format"` // text or json
}

// DefaultConfigName is the file looked up in the working directory when no
// path is given
const DefaultConfigName = "xrplwallet.toml"

// ConfigPathFromDir returns the configuration path for a specific directory
func ConfigPathFromDir(configDir string) string {
	return filepath.Join(configDir, DefaultConfigName)
}

// GetConfigPath returns the path the configuration was read from, empty when
// only defaults and environment were used
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// JSONOutput reports whether results should be printed as JSON
func (c *Config) JSONOutput() bool {
	return c.Output.Format == "json"
}
