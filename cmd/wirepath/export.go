package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/internal/ui"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <diagram>",
		Short: "Export a diagram as a timestamped JSON envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := diagram.Load(args[0])
			if err != nil {
				ui.Bad.Printf("wirepath: %v\n", err)

				return err
			}
			d.Normalize()

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("wirepath: create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			return d.Export(w)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to file (default stdout)")

	return cmd
}
