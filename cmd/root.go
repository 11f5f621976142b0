/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/config"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"github.com/longkey1/crybaby/internal/gemini"
	"github.com/longkey1/crybaby/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crybaby",
	Short: "A whiny but helpful Gemini assistant for the terminal",
	Long: `crybaby is a terminal assistant backed by Google Gemini.
It complains about everything and still answers properly.

It has three modes:
  chat           multi-turn conversation with web search and attachments
  transcription  turn an audio file into text
  analysis       describe an image, a video or a PDF

You can configure the tool using a TOML configuration file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/crybaby/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// userConfigDir returns $HOME/.config/crybaby
func userConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %v", err)
	}
	return filepath.Join(home, ".config", "crybaby"), nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("CRYBABY")
	viper.AutomaticEnv()

	userDir, err := userConfigDir()
	cobra.CheckErr(err)

	defaultConfig := config.NewDefaultConfig()
	viper.SetDefault("model", defaultConfig.Model)
	viper.SetDefault("gemini_base_url", defaultConfig.GeminiBaseURL)
	viper.SetDefault("gemini_token", defaultConfig.GeminiToken)
	viper.SetDefault("persona_file", defaultConfig.PersonaFile)
	viper.SetDefault("request_timeout", defaultConfig.RequestTimeout)
	viper.SetDefault("render_markdown", defaultConfig.RenderMarkdown)
	viper.SetDefault("log_level", defaultConfig.LogLevel)
	viper.SetDefault("log_format", defaultConfig.LogFormat)

	viper.BindEnv("model", "CRYBABY_MODEL")
	viper.BindEnv("gemini_base_url", "CRYBABY_GEMINI_BASE_URL")
	viper.BindEnv("gemini_token", "CRYBABY_GEMINI_TOKEN")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else {
		// System-wide config first, user config merged on top
		for _, path := range []string{"/etc/crybaby", "/usr/local/etc/crybaby"} {
			viper.AddConfigPath(path)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		systemConfigLoaded := false
		if err := viper.ReadInConfig(); err == nil {
			systemConfigLoaded = true
			if verbose {
				fmt.Fprintln(os.Stderr, "Loaded system-wide config:", viper.ConfigFileUsed())
			}
		}

		viper.AddConfigPath(userDir)
		if systemConfigLoaded {
			if err := viper.MergeInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error merging user config file: %v\n", err)
				}
			}
		} else if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			}
		}
	}

	if verbose {
		viper.Set("log_level", "debug")
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, "  CRYBABY_MODEL:", viper.GetString("model"))
		fmt.Fprintln(os.Stderr, "  CRYBABY_GEMINI_BASE_URL:", viper.GetString("gemini_base_url"))
		fmt.Fprintln(os.Stderr, "  CRYBABY_PERSONA_FILE:", viper.GetString("persona_file"))
	}
}

// app bundles what every assistant command needs
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	persona *persona.Persona
	client  *gemini.Client
	timeout time.Duration
}

// newApp loads config, logger, persona and the Gemini client
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timeout, err := cfg.GetRequestTimeout()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	p, err := persona.Resolve(cfg.PersonaFile)
	if err != nil {
		return nil, fmt.Errorf("loading persona: %w", err)
	}

	client, err := gemini.NewClient(cfg, p, log)
	if err != nil {
		if errors.Is(err, crybaby.ErrNotConfigured) {
			return nil, fmt.Errorf("%w\nRun 'crybaby init' or export GEMINI_API_KEY", err)
		}
		return nil, fmt.Errorf("creating client: %w", err)
	}

	log.Debug("Assistant ready",
		zap.String("model", client.Model()),
		zap.String("persona", p.Name),
		zap.Duration("request_timeout", timeout))

	return &app{cfg: cfg, logger: log, persona: p, client: client, timeout: timeout}, nil
}

// requestContext bounds a single remote call by the configured timeout
func (a *app) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, a.timeout)
}

func (a *app) close() {
	_ = a.logger.Sync()
}
