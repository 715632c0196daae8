package config

import "github.com/spf13/viper"

// Default values used when neither the config file nor the environment sets
// a key. Every key needs a default for environment overrides to apply.
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
	DefaultLookupEndpoint  = "wss://xrplcluster.com"
	DefaultLookupTimeout   = "10s"
	DefaultLookupCacheSize = 256
	DefaultLookupCacheTTL  = "30s"
	DefaultLanguage        = "en"
	DefaultOutputFormat    = "text"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("lookup.endpoint", DefaultLookupEndpoint)
	v.SetDefault("lookup.timeout", DefaultLookupTimeout)
	v.SetDefault("lookup.cache_size", DefaultLookupCacheSize)
	v.SetDefault("lookup.cache_ttl", DefaultLookupCacheTTL)

	v.SetDefault("explain.language", DefaultLanguage)
	v.SetDefault("explain.account", "")

	v.SetDefault("output.format", DefaultOutputFormat)
}

// generateExampleConfig generates example configuration values
func generateExampleConfig() map[string]interface{} {
	return map[string]interface{}{
		"log.level":  DefaultLogLevel,
		"log.format": DefaultLogFormat,

		"lookup.endpoint":   DefaultLookupEndpoint,
		"lookup.timeout":    DefaultLookupTimeout,
		"lookup.cache_size": DefaultLookupCacheSize,
		"lookup.cache_ttl":  DefaultLookupCacheTTL,

		"explain.language": DefaultLanguage,
		"explain.account":  "",

		"output.format": DefaultOutputFormat,
	}
}
