/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/crybaby/internal/crybaby/config"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"github.com/spf13/cobra"
)

var personaDump bool

// personaCmd represents the persona command
var personaCmd = &cobra.Command{
	Use:   "persona",
	Short: "Show the active persona",
	Long: `Show which persona the assistant uses and where it comes from.

The persona is loaded from persona_file in the config; without one the
built-in persona is used. Fields missing from the file keep their
built-in values.

Use --dump to print the full persona as TOML, e.g. as a starting point
for your own file:
  crybaby persona --dump > ~/.config/crybaby/persona.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		p, err := persona.Resolve(cfg.PersonaFile)
		if err != nil {
			return err
		}

		if personaDump {
			return toml.NewEncoder(os.Stdout).Encode(p)
		}

		fmt.Printf("Name: %s\n", p.Name)
		fmt.Printf("Source: %s\n", displayPersonaFile(cfg.PersonaFile))
		fmt.Printf("Greeting: %s\n", p.Greeting)
		fmt.Printf("System prompt:\n%s\n", strings.TrimSpace(p.System))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personaCmd)

	personaCmd.Flags().BoolVar(&personaDump, "dump", false, "Print the full persona as TOML")
}
