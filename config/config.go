package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the upstream exchange API, and the request budget.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8000
//	NEPSE_BASE_URL=https://www.nepalstock.com
//	NEPSE_TIMEOUT_SECONDS=15
//	NEPSE_TLS_VERIFY=false
//	RATE_LIMIT_CAPACITY=4
//	RATE_LIMIT_REFILL_PER_SECOND=2
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Nepse     NepseConfig     // Upstream exchange API settings
	RateLimit RateLimitConfig // Token-bucket request budget
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8000")
}

// NepseConfig defines how the upstream exchange API is reached.
//
// Fields:
//   - BaseURL: root of the exchange REST API.
//   - Timeout: per-request timeout for upstream calls.
//   - VerifyTLS: whether to verify the upstream certificate chain. The
//     exchange serves an incomplete chain, so this defaults to false.
type NepseConfig struct {
	BaseURL   string
	Timeout   time.Duration
	VerifyTLS bool
}

// RateLimitConfig defines the global token bucket applied to all requests.
//
// Fields:
//   - Capacity: burst size (maximum tokens the bucket holds).
//   - RefillPerSecond: tokens credited back per second.
type RateLimitConfig struct {
	Capacity        int
	RefillPerSecond float64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8000")

	viper.SetDefault("NEPSE_BASE_URL", "https://www.nepalstock.com")
	viper.SetDefault("NEPSE_TIMEOUT_SECONDS", 15)
	viper.SetDefault("NEPSE_TLS_VERIFY", false)

	viper.SetDefault("RATE_LIMIT_CAPACITY", 4)
	viper.SetDefault("RATE_LIMIT_REFILL_PER_SECOND", 2.0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Nepse: NepseConfig{
			BaseURL:   viper.GetString("NEPSE_BASE_URL"),
			Timeout:   time.Duration(viper.GetInt("NEPSE_TIMEOUT_SECONDS")) * time.Second,
			VerifyTLS: viper.GetBool("NEPSE_TLS_VERIFY"),
		},
		RateLimit: RateLimitConfig{
			Capacity:        viper.GetInt("RATE_LIMIT_CAPACITY"),
			RefillPerSecond: viper.GetFloat64("RATE_LIMIT_REFILL_PER_SECOND"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Nepse.BaseURL == "" {
		missing = append(missing, "NEPSE_BASE_URL")
	}
	if AppConfig.Nepse.Timeout <= 0 {
		missing = append(missing, "NEPSE_TIMEOUT_SECONDS")
	}
	if AppConfig.RateLimit.Capacity <= 0 {
		missing = append(missing, "RATE_LIMIT_CAPACITY")
	}
	if AppConfig.RateLimit.RefillPerSecond <= 0 {
		missing = append(missing, "RATE_LIMIT_REFILL_PER_SECOND")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
