package cmd

import (
	"fmt"
	"strings"

	"github.com/longkey1/crybaby/internal/crybaby/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFields = "configfile, model, provider, model_name, gemini_base_url, gemini_token, persona_file, request_timeout, render_markdown, log_level, log_format"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + configFields + `

Examples:
  crybaby config               # Show all configuration
  crybaby config model         # Show only model
  crybaby config gemini_token  # Show only Gemini token (masked)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) > 0 {
			value, ok := configField(cfg, args[0])
			if !ok {
				return fmt.Errorf("unknown field: %s\nAvailable fields: %s", args[0], configFields)
			}
			fmt.Println(value)
			return nil
		}

		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("Model: %s\n", cfg.Model)
		if provider, err := cfg.GetProvider(); err == nil {
			name, _ := cfg.GetModelName()
			fmt.Printf("  Provider: %s\n", provider)
			fmt.Printf("  ModelName: %s\n", name)
		} else {
			fmt.Printf("  (invalid model: %v)\n", err)
		}
		fmt.Printf("GeminiBaseURL: %s\n", cfg.GeminiBaseURL)
		fmt.Printf("GeminiToken: %s\n", maskToken(cfg.GeminiToken))
		fmt.Printf("PersonaFile: %s\n", displayPersonaFile(cfg.PersonaFile))
		fmt.Printf("RequestTimeout: %s\n", cfg.RequestTimeout)
		fmt.Printf("RenderMarkdown: %v\n", cfg.RenderMarkdown)
		fmt.Printf("LogLevel: %s\n", cfg.LogLevel)
		fmt.Printf("LogFormat: %s\n", cfg.LogFormat)
		return nil
	},
}

// configField returns the printable value of a single field
func configField(cfg *config.Config, field string) (string, bool) {
	switch strings.ToLower(field) {
	case "configfile":
		return viper.ConfigFileUsed(), true
	case "model":
		return cfg.Model, true
	case "provider":
		provider, err := cfg.GetProvider()
		if err != nil {
			return err.Error(), true
		}
		return provider, true
	case "model_name", "modelname":
		name, err := cfg.GetModelName()
		if err != nil {
			return err.Error(), true
		}
		return name, true
	case "gemini_base_url", "geminibaseurl":
		return cfg.GeminiBaseURL, true
	case "gemini_token", "geminitoken":
		return maskToken(cfg.GeminiToken), true
	case "persona_file", "personafile":
		return displayPersonaFile(cfg.PersonaFile), true
	case "request_timeout", "requesttimeout":
		return cfg.RequestTimeout, true
	case "render_markdown", "rendermarkdown":
		return fmt.Sprint(cfg.RenderMarkdown), true
	case "log_level", "loglevel":
		return cfg.LogLevel, true
	case "log_format", "logformat":
		return cfg.LogFormat, true
	}
	return "", false
}

func displayPersonaFile(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}

// maskToken returns a masked version of the token for security
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
}
