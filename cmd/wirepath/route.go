package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/internal/ui"
	"github.com/archicomm/wirepath/render"
	"github.com/archicomm/wirepath/routecache"
	"github.com/archicomm/wirepath/router"
)

// routeReport is the JSON shape of one routed connection.
type routeReport struct {
	ConnectionID string       `json:"connection_id"`
	Strategy     string       `json:"strategy"`
	Collisions   int          `json:"collisions"`
	Length       float64      `json:"length"`
	Bends        int          `json:"bends"`
	Truncated    bool         `json:"truncated,omitempty"`
	Points       []geom.Point `json:"points"`
}

func routeCmd() *cobra.Command {
	var (
		out         string
		svgOut      string
		clearance   float64
		bendPenalty float64
		budgetMS    int
		gridLimit   int
		cacheCap    int
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "route <diagram>",
		Short: "Route every connection of a diagram around its shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("clearance") {
				clearance = cfg.Router.Clearance
			}
			if !cmd.Flags().Changed("bend-penalty") {
				bendPenalty = cfg.Router.BendPenalty
			}
			if !cmd.Flags().Changed("budget") {
				budgetMS = cfg.Router.BudgetMS
			}
			if !cmd.Flags().Changed("grid-limit") {
				gridLimit = cfg.Router.GridLimit
			}
			if !cmd.Flags().Changed("cache") {
				cacheCap = cfg.Cache.Capacity
			}
			// Flags and config merge before validation, so a bad
			// budget_ms in config.toml fails the same way a bad flag does.
			if budgetMS <= 0 {
				return fmt.Errorf("wirepath: budget must be positive, got %dms", budgetMS)
			}
			if clearance < 0 {
				return fmt.Errorf("wirepath: clearance must be non-negative, got %g", clearance)
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

			opts := []router.Option{
				router.WithClearance(clearance),
				router.WithBendPenalty(bendPenalty),
				router.WithBudget(time.Duration(budgetMS) * time.Millisecond),
				router.WithGridLimit(gridLimit),
			}
			var cache *routecache.Cache[router.Route]
			if cacheCap > 0 {
				if cache, err = routecache.New[router.Route](cacheCap); err != nil {
					return err
				}
				opts = append(opts, router.WithCache(cache))
			}

			start := time.Now()
			routes, err := router.RouteAll(cmd.Context(), d, opts...)
			if err != nil {
				ui.Bad.Printf("wirepath: %v\n", err)

				return err
			}
			elapsed := time.Since(start)

			if err = writeRouteOutput(out, routes); err != nil {
				return err
			}
			if svgOut != "" {
				if err = writeSVGOutput(svgOut, d, routes); err != nil {
					return err
				}
			}

			if !quiet {
				printRouteSummary(d, routes, elapsed)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write routes JSON to file (default stdout)")
	cmd.Flags().StringVar(&svgOut, "svg", "", "Additionally render the routed diagram to an SVG file")
	cmd.Flags().Float64Var(&clearance, "clearance", router.DefaultClearance, "Obstacle padding in pixels")
	cmd.Flags().Float64Var(&bendPenalty, "bend-penalty", router.DefaultBendPenalty, "Cost per bend when ranking routes")
	cmd.Flags().IntVar(&budgetMS, "budget", 16, "Per-route time budget in milliseconds")
	cmd.Flags().IntVar(&gridLimit, "grid-limit", router.DefaultGridLimit, "Maximum Manhattan grid nodes")
	cmd.Flags().IntVar(&cacheCap, "cache", routecache.DefaultCapacity, "Route cache capacity (0 disables)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the routing summary")

	return cmd
}

func writeRouteOutput(out string, routes []router.ConnectionRoute) error {
	reports := make([]routeReport, len(routes))
	for i, cr := range routes {
		reports[i] = routeReport{
			ConnectionID: cr.ConnectionID,
			Strategy:     cr.Route.Strategy.String(),
			Collisions:   cr.Route.Collisions,
			Length:       cr.Route.Length,
			Bends:        cr.Route.Bends,
			Truncated:    cr.Route.Truncated,
			Points:       cr.Route.Points,
		}
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("wirepath: create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(reports)
}

func writeSVGOutput(path string, d *diagram.Diagram, routes []router.ConnectionRoute) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wirepath: create %s: %w", path, err)
	}
	defer f.Close()

	return render.WriteSVG(f, d, routes)
}

func printRouteSummary(d *diagram.Diagram, routes []router.ConnectionRoute, elapsed time.Duration) {
	var collisions, truncated int
	byStrategy := map[router.Strategy]int{}
	for _, cr := range routes {
		collisions += cr.Route.Collisions
		byStrategy[cr.Route.Strategy]++
		if cr.Route.Truncated {
			truncated++
		}
	}

	ui.Banner("route")
	ui.KV("shapes", len(d.Shapes))
	ui.KV("connections", len(routes))
	ui.KV("direct", byStrategy[router.StrategyDirect])
	ui.KV("orthogonal", byStrategy[router.StrategyOrthogonal])
	ui.KV("manhattan", byStrategy[router.StrategyManhattan])
	ui.KV("elapsed", elapsed.Round(time.Microsecond))
	if collisions == 0 {
		ui.Good.Println("  all routes collision-free")
	} else {
		ui.Warn.Printf("  %d residual collision(s)\n", collisions)
	}
	if truncated > 0 {
		ui.Warn.Printf("  %d route(s) hit the time budget\n", truncated)
	}
}
