package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/spf13/viper"
)

// expandEnvVar expands environment variable references in the given value
// Supports both $VAR and ${VAR} syntax
// Returns the expanded value. If the environment variable is not set, returns empty string.
func expandEnvVar(value string) (string, error) {
	// Check if it's an environment variable reference
	if !strings.HasPrefix(value, "$") {
		// Not an environment variable reference, return as-is
		return value, nil
	}

	var envVarName string
	// Support both $VAR and ${VAR} syntax
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		// Extract variable name from ${VAR} format
		envVarName = value[2 : len(value)-1]
	} else {
		// Extract variable name from $VAR format
		envVarName = strings.TrimPrefix(value, "$")
	}

	// Get environment variable value
	// If not set, return empty string (no error)
	envValue := os.Getenv(envVarName)
	return envValue, nil
}

// GetBaseURL returns the Gemini base URL
// Environment variables are already expanded during LoadConfig()
func (c *Config) GetBaseURL() (string, error) {
	// Validate that base URL is not empty
	if c.GeminiBaseURL == "" {
		return "", fmt.Errorf("gemini base URL is not configured. Set it in config file (gemini_base_url) or environment variable (CRYBABY_GEMINI_BASE_URL)")
	}

	return strings.TrimRight(c.GeminiBaseURL, "/"), nil
}

// GetToken returns the Gemini token
// Environment variables are already expanded during LoadConfig()
func (c *Config) GetToken() (string, error) {
	// Validate that token is not empty
	if c.GeminiToken == "" {
		return "", fmt.Errorf("%w. Set it in config file (gemini_token) or environment variable (CRYBABY_GEMINI_TOKEN)", crybaby.ErrNotConfigured)
	}

	return c.GeminiToken, nil
}

// ResolvePath converts a relative path to absolute path if needed
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	// Get config file directory as base directory
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		// If no config file is used, fall back to current working directory
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting current working directory: %v", err)
		}
		return filepath.Join(cwd, path), nil
	}

	// Use config file directory as base
	configDir := filepath.Dir(configFile)

	// If configDir is relative, make it absolute
	if !filepath.IsAbs(configDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting current working directory: %v", err)
		}
		configDir = filepath.Join(cwd, configDir)
	}

	resolvedPath := filepath.Join(configDir, path)
	return resolvedPath, nil
}
