package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Kafka     KafkaConfig
	Server    ServerConfig
	Metrics   MetricsConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds settings for the mock login flow
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// KafkaConfig holds lead event streaming configuration.
// An empty Brokers value disables event publishing.
type KafkaConfig struct {
	Brokers       string
	Topic         string
	ConsumerGroup string
}

// Enabled reports whether a broker list was configured
func (k KafkaConfig) Enabled() bool {
	return k.Brokers != ""
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool
}

// LogConfig selects the log encoder and minimum level
type LogConfig struct {
	Env   string
	Level string
}

// RedisConfig holds the optional Redis connection used for rate limiting.
// An empty Host disables it.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig bounds requests to the public auth endpoints per client IP
type RateLimitConfig struct {
	AuthRequests int
	Window       time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	ttl := getEnvWithDefault("JWT_TTL", "24h")
	cfg.Auth.TokenTTL, err = time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT_TTL: %w", err)
	}

	// Kafka configuration
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "lead-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "lead-activity")

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "8080")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:5173")

	metricsEnabled := getEnvWithDefault("METRICS_ENABLED", "true")
	cfg.Metrics.Enabled, err = strconv.ParseBool(metricsEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to parse METRICS_ENABLED: %w", err)
	}

	cfg.Log.Env = getEnvWithDefault("GO_ENV", "development")
	cfg.Log.Level = getEnvWithDefault("LOG_LEVEL", "info")

	// Redis configuration
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Rate limit configuration
	if cfg.RateLimit.AuthRequests, err = strconv.Atoi(getEnvWithDefault("AUTH_RATE_LIMIT", "20")); err != nil {
		return nil, fmt.Errorf("failed to parse AUTH_RATE_LIMIT: %w", err)
	}
	if cfg.RateLimit.Window, err = time.ParseDuration(getEnvWithDefault("AUTH_RATE_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("failed to parse AUTH_RATE_WINDOW: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
