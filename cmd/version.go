/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/longkey1/crybaby/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show version information.
With --short only the version number is printed; with --long the version,
commit SHA, build time and Go version are printed as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(version.Short())
			return nil
		}
		long, _ := cmd.Flags().GetBool("long")
		if !long {
			fmt.Println(version.Info())
			return nil
		}

		out, err := json.MarshalIndent(version.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolP("short", "s", false, "Show only version number")
	versionCmd.Flags().Bool("long", false, "Print detailed version information as JSON")
}
