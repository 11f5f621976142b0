/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/gemini"
	"github.com/spf13/cobra"
)

// modelsCmd represents the models command
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available Gemini models",
	Long: `List the Gemini models that support content generation.
Fetches the latest model information directly from the API.

Example:
  crybaby models
  CRYBABY_MODEL=gemini:gemini-2.5-pro crybaby chat`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := a.requestContext(cmd.Context())
		defer cancel()

		models, err := a.client.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}
		if len(models) == 0 {
			return fmt.Errorf("no models returned from API")
		}

		// Calculate column widths
		maxModelWidth := 15
		for _, model := range models {
			if n := len(crybaby.FormatModelString(gemini.ProviderName, model.ID)); n > maxModelWidth {
				maxModelWidth = n
			}
		}

		fmt.Printf("%-*s  %-7s  %s\n", maxModelWidth, "MODEL", "DEFAULT", "DESCRIPTION")
		fmt.Printf("%s  %s  %s\n",
			strings.Repeat("-", maxModelWidth),
			strings.Repeat("-", 7),
			strings.Repeat("-", 50))

		for _, model := range models {
			defaultMark := ""
			if model.IsDefault {
				defaultMark = "Yes"
			}
			fmt.Printf("%-*s  %-7s  %s\n",
				maxModelWidth,
				crybaby.FormatModelString(gemini.ProviderName, model.ID),
				defaultMark,
				model.Description)
		}

		fmt.Printf("\nUse a model with: CRYBABY_MODEL=<model> crybaby chat\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
