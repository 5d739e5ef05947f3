package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultDatasetSource is the dataset location used outside production
const DefaultDatasetSource = "data/recipe_database.json"

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Dataset and catalog profile
	DatasetSource string
	ProfilePath   string
	AWSRegion     string

	// Search memoization
	SearchCacheTTL time.Duration

	// Redis configuration, rate limiting is disabled without a URL
	RedisURL        string
	RedisPassword   string
	RateLimit       int
	RateLimitWindow time.Duration

	CORSOrigins []string

	// Logging
	LogLevel string
	LogFile  string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:           GetEnvironment(),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatasetSource: getEnv("DATASET_SOURCE", ""),
		ProfilePath:   getEnv("CATALOG_PROFILE", ""),
		AWSRegion:     getEnv("AWS_REGION", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}

	if cfg.DatasetSource == "" && !cfg.Env.IsProduction() {
		cfg.DatasetSource = DefaultDatasetSource
	}

	// Secrets come from Docker secrets, CI passes them as plain variables
	cfg.RedisPassword = readSecret("redis_password")
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	}

	var err error
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 120); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.SearchCacheTTL, err = getDuration("SEARCH_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("not an integer: %q", v)}
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("not a duration: %q", v)}
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
