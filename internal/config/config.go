package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port          string
	AllowedOrigin string

	// Logging
	LogLevel string

	// Database
	DataBackend  string
	SQLiteDBPath string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// AI extraction
	OpenAIAPIKey string
	OpenAIModel  string

	// Bookkeeping defaults
	DefaultCurrency string

	// AMQP event publishing (optional; empty URL disables it)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "5000"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/voxledger.db"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "NGN"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "voxledger"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "transaction_events"),
	}
}

// Validate checks the configuration and returns every problem found
// as a single error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case "memory":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [sqlite memory]", c.DataBackend))
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}
	if c.TokenTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.DefaultCurrency == "" {
		errs = append(errs, "default currency cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level. Unknown
// values fall back to info; Validate reports them.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
