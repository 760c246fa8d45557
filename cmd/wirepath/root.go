package main

import (
	"github.com/spf13/cobra"

	"github.com/archicomm/wirepath/internal/config"
)

var version = "0.3.0"

// configPath is the --config override shared by every subcommand.
var configPath string

// loadConfig resolves the effective CLI defaults.
func loadConfig() *config.Config {
	return config.Load(configPath)
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wirepath",
		Short: "wirepath — smart connector routing for diagram files",
		Long: "wirepath routes diagram connections around obstacles, culls " +
			"off-screen shapes, and exports the result as JSON or SVG.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("wirepath {{ .Version }}\n")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/wirepath/config.toml)")

	cmd.AddCommand(
		routeCmd(),
		cullCmd(),
		checkCmd(),
		exportCmd(),
		configCmd(),
	)

	return cmd
}
