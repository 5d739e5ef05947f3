package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch env := strings.ToLower(strings.TrimSpace(os.Getenv("ENV"))); env {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsDevelopment returns true if e is the development environment
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsProduction returns true if e is the production environment
func (e Environment) IsProduction() bool {
	return e == Production
}
