package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archicomm/wirepath/internal/config"
	"github.com/archicomm/wirepath/internal/ui"
)

func configCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the wirepath config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path()
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("wirepath: %s already exists (use --force to overwrite)", path)
				}
			}
			if err := config.Save(config.Default()); err != nil {
				return fmt.Errorf("wirepath: write config: %w", err)
			}
			ui.Good.Printf("wrote %s\n", path)

			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)

	return cmd
}
