package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	var errs []error

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if cfg.DatasetSource == "" {
		errs = append(errs, ValidationError{Field: "DATASET_SOURCE", Message: fmt.Sprintf("required in %s environment", cfg.Env)})
	} else if strings.HasPrefix(cfg.DatasetSource, "s3://") && cfg.AWSRegion == "" {
		errs = append(errs, ValidationError{Field: "AWS_REGION", Message: "required for an s3 dataset source"})
	}

	if cfg.SearchCacheTTL < 0 {
		errs = append(errs, ValidationError{Field: "SEARCH_CACHE_TTL", Message: "must not be negative"})
	}

	if cfg.RedisURL != "" {
		if _, err := url.Parse(cfg.RedisURL); err != nil {
			errs = append(errs, ValidationError{Field: "REDIS_URL", Message: err.Error()})
		}
		if cfg.RateLimit <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT", Message: "must be positive when REDIS_URL is set"})
		}
		if cfg.RateLimitWindow <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be positive when REDIS_URL is set"})
		}
	}

	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{Field: "CORS_ORIGINS", Message: fmt.Sprintf("origin %q must start with http:// or https://", origin)})
		}
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}

	return errors.Join(errs...)
}
