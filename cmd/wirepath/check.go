package main

import (
	"github.com/spf13/cobra"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/internal/ui"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <diagram>",
		Short: "Validate a diagram file's structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := diagram.Load(args[0])
			if err != nil {
				ui.Bad.Printf("wirepath: %v\n", err)

				return err
			}
			d.Normalize()
			if err = d.Validate(); err != nil {
				ui.Bad.Printf("wirepath: %v\n", err)

				return err
			}

			ui.Banner("check")
			ui.KV("shapes", len(d.Shapes))
			ui.KV("connections", len(d.Connections))
			for _, c := range d.Connections {
				src, _ := d.ShapeByID(c.SourceID)
				dst, _ := d.ShapeByID(c.TargetID)
				ui.Subtle.Printf("  %s: %s → %s\n", c.ID, labelOf(src), labelOf(dst))
			}
			ui.Good.Println("  diagram is valid")

			return nil
		},
	}

	return cmd
}

func labelOf(s diagram.Shape) string {
	if s.Label != "" {
		return s.Label
	}

	return s.ID
}
