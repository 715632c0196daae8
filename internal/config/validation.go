package config

import (
	"fmt"
	"net/url"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}
	if err := validateLookupConfig(&config.Lookup); err != nil {
		return fmt.Errorf("lookup config validation failed: %w", err)
	}
	if err := validateExplainConfig(&config.Explain); err != nil {
		return fmt.Errorf("explain config validation failed: %w", err)
	}
	if err := ValidateOutputFormat(config.Output.Format); err != nil {
		return fmt.Errorf("output config validation failed: %w", err)
	}
	return nil
}

// validateLogConfig validates the logger settings
func validateLogConfig(log *LogConfig) error {
	if _, err := zapcore.ParseLevel(log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch log.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("log format must be 'console' or 'json', got '%s'", log.Format)
	}
}

// validateLookupConfig validates the ledger lookup settings
func validateLookupConfig(lookup *LookupConfig) error {
	u, err := url.Parse(lookup.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("endpoint must use ws or wss, got '%s'", lookup.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint has no host: '%s'", lookup.Endpoint)
	}

	if lookup.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", lookup.Timeout)
	}
	if lookup.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative, got %d", lookup.CacheSize)
	}
	if lookup.CachingEnabled() && lookup.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive when caching, got %s", lookup.CacheTTL)
	}
	return nil
}

// validateExplainConfig validates the explanation viewpoint
func validateExplainConfig(e *ExplainConfig) error {
	tag, err := e.LanguageTag()
	if err != nil {
		return err
	}
	if !isSupportedLanguage(tag) {
		return fmt.Errorf("language '%s' has no catalog, supported: %v", e.Language, explain.SupportedLanguages)
	}
	if e.Account != "" && !types.IsValidAddress(e.Account) {
		return fmt.Errorf("account '%s' is not a valid classic address", e.Account)
	}
	return nil
}

func isSupportedLanguage(tag language.Tag) bool {
	base, _ := tag.Base()
	for _, supported := range explain.SupportedLanguages {
		if b, _ := supported.Base(); b == base {
			return true
		}
	}
	return false
}

// ValidateOutputFormat validates an output format name
func ValidateOutputFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("output format must be 'text' or 'json', got '%s'", format)
	}
}
