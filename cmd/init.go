package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/crybaby/internal/crybaby/config"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"github.com/spf13/cobra"
)

const personaFileName = "persona.toml"

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Initialize the configuration file with default settings.
The config file will be created at $HOME/.config/crybaby/config.toml by default.
You can specify a different location using the --config option.

A persona.toml holding the built-in persona is written next to it so the
assistant's texts can be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := cfgFile
		if configFile == "" {
			dir, err := userConfigDir()
			if err != nil {
				return err
			}
			configFile = filepath.Join(dir, "config.toml")
		}

		configDir := filepath.Dir(configFile)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %v", err)
		}

		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("config file already exists at: %s", configFile)
		}

		cfg := config.NewDefaultConfig()
		cfg.PersonaFile = personaFileName
		if err := writeTOML(configFile, cfg, 0600); err != nil {
			return err
		}
		fmt.Printf("Configuration file created at: %s\n", configFile)

		personaFile := filepath.Join(configDir, personaFileName)
		if _, err := os.Stat(personaFile); err == nil {
			fmt.Printf("Keeping existing persona file: %s\n", personaFile)
			return nil
		}
		if err := writeTOML(personaFile, persona.Default(), 0644); err != nil {
			return err
		}
		fmt.Printf("Persona file created at: %s\n", personaFile)
		return nil
	},
}

// writeTOML encodes v into a new file
func writeTOML(path string, v any, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %v", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
