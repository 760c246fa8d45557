package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/internal/ui"
	"github.com/archicomm/wirepath/spatial"
	"github.com/archicomm/wirepath/viewport"
)

func cullCmd() *cobra.Command {
	var (
		viewSpec string
		zoom     float64
		padding  float64
		showIDs  bool
	)

	cmd := &cobra.Command{
		Use:   "cull <diagram>",
		Short: "Report which shapes and connections a viewport would render",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("pad") {
				padding = cfg.Viewport.Padding
			}
			if padding < 0 {
				return fmt.Errorf("wirepath: pad must be non-negative, got %g", padding)
			}

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

			view, err := parseView(viewSpec, zoom)
			if err != nil {
				ui.Bad.Printf("wirepath: %v\n", err)

				return err
			}

			items := make([]spatial.Item, 0, len(d.Shapes))
			for _, s := range d.Shapes {
				items = append(items, spatial.Item{ID: s.ID, Box: s.Box()})
			}
			idx, err := spatial.Bulk(items)
			if err != nil {
				return err
			}

			set, err := viewport.Cull(d, idx, view, viewport.WithPadding(padding))
			if err != nil {
				ui.Bad.Printf("wirepath: %v\n", err)

				return err
			}

			ui.Banner("cull")
			ui.KV("viewport", fmt.Sprintf("%.0f,%.0f %gx%g @%gx", view.X, view.Y, view.W, view.H, view.Zoom))
			ui.KV("shapes", fmt.Sprintf("%d of %d visible", set.Stats.VisibleShapes, set.Stats.TotalShapes))
			ui.KV("connections", fmt.Sprintf("%d of %d visible", set.Stats.VisibleConnections, set.Stats.TotalConnections))
			if showIDs {
				ui.KV("shape ids", strings.Join(set.ShapeIDs, ", "))
				ui.KV("connection ids", strings.Join(set.ConnectionIDs, ", "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&viewSpec, "view", "", "Viewport as X,Y,WxH in world/screen units (required)")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "Zoom factor")
	cmd.Flags().Float64Var(&padding, "pad", viewport.DefaultPadding, "Overscan padding ratio")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "List the visible IDs")
	_ = cmd.MarkFlagRequired("view")

	return cmd
}

// parseView parses "X,Y,WxH" plus a zoom factor into a viewport.View.
func parseView(spec string, zoom float64) (viewport.View, error) {
	var v viewport.View
	if _, err := fmt.Sscanf(spec, "%f,%f,%fx%f", &v.X, &v.Y, &v.W, &v.H); err != nil {
		return viewport.View{}, fmt.Errorf("wirepath: bad --view %q (want X,Y,WxH): %w", spec, err)
	}
	v.Zoom = zoom

	return v, nil
}
