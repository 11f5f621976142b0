package config

import (
	"fmt"
	"time"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/gemini"
	"github.com/spf13/viper"
)

// Config holds the configuration for the assistant
type Config struct {
	Model          string `toml:"model" mapstructure:"model"` // Format: "provider:model" (e.g., "gemini:gemini-2.5-flash")
	GeminiBaseURL  string `toml:"gemini_base_url" mapstructure:"gemini_base_url"`
	GeminiToken    string `toml:"gemini_token" mapstructure:"gemini_token"`
	PersonaFile    string `toml:"persona_file" mapstructure:"persona_file"`       // empty = built-in persona
	RequestTimeout string `toml:"request_timeout" mapstructure:"request_timeout"` // Go duration, "0" disables
	RenderMarkdown bool   `toml:"render_markdown" mapstructure:"render_markdown"`
	LogLevel       string `toml:"log_level" mapstructure:"log_level"`
	LogFormat      string `toml:"log_format" mapstructure:"log_format"`
}

// GetModel returns the model name
func (c *Config) GetModel() string {
	return c.Model
}

// GetProvider extracts provider name from the model string
func (c *Config) GetProvider() (string, error) {
	provider, _, err := crybaby.ParseModelString(c.Model)
	return provider, err
}

// GetModelName extracts model name from the model string
func (c *Config) GetModelName() (string, error) {
	_, model, err := crybaby.ParseModelString(c.Model)
	return model, err
}

// GetRequestTimeout returns the per-request timeout, zero meaning none
func (c *Config) GetRequestTimeout() (time.Duration, error) {
	if c.RequestTimeout == "" || c.RequestTimeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid request_timeout %q: %w", c.RequestTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid request_timeout %q: must not be negative", c.RequestTimeout)
	}
	return d, nil
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Model:          crybaby.FormatModelString(gemini.ProviderName, gemini.DefaultModel),
		GeminiBaseURL:  gemini.DefaultBaseURL,
		GeminiToken:    "$GEMINI_API_KEY", // Default to env var
		PersonaFile:    "",
		RequestTimeout: "2m",
		RenderMarkdown: true,
		LogLevel:       "warn",
		LogFormat:      "console",
	}
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	var err error
	if config.GeminiToken, err = expandEnvVar(config.GeminiToken); err != nil {
		return nil, fmt.Errorf("error expanding gemini_token: %v", err)
	}
	if config.GeminiBaseURL, err = expandEnvVar(config.GeminiBaseURL); err != nil {
		return nil, fmt.Errorf("error expanding gemini_base_url: %v", err)
	}

	// Convert persona file to absolute path
	if config.PersonaFile != "" {
		absPath, err := ResolvePath(config.PersonaFile)
		if err != nil {
			return nil, fmt.Errorf("error resolving persona file path '%s': %v", config.PersonaFile, err)
		}
		config.PersonaFile = absPath
	}

	return config, nil
}
