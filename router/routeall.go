package router

import (
	"context"
	"fmt"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/routecache"
	"github.com/archicomm/wirepath/spatial"
)

// ConnectionRoute pairs a routed path with the connection it belongs to.
type ConnectionRoute struct {
	// ConnectionID names the diagram connection.
	ConnectionID string
	// Route is the computed path.
	Route Route
}

// RouteAll routes every connection of the diagram.
//
// The obstacle index is packed once from the full shape list
// (spatial.Bulk); each connection is then routed with its own endpoints
// excluded from collision checks and its own time budget. When a cache is
// attached via WithCache, each connection's signature is consulted before
// routing and fresh results are stored.
//
// Results come back in connection order. Routing stops at the first
// error: an endpoint that resolves to no shape is reported as
// diagram.ErrUnknownEndpoint wrapped with the connection ID (callers that
// validated the diagram first never see it).
func RouteAll(ctx context.Context, d *diagram.Diagram, opts ...Option) ([]ConnectionRoute, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	items := make([]spatial.Item, 0, len(d.Shapes))
	for _, s := range d.Shapes {
		items = append(items, spatial.Item{ID: s.ID, Box: s.Box()})
	}
	idx, err := spatial.Bulk(items)
	if err != nil {
		return nil, fmt.Errorf("router: index diagram: %w", err)
	}

	fp := cfg.Fingerprint()

	out := make([]ConnectionRoute, 0, len(d.Connections))
	for _, conn := range d.Connections {
		src, ok := d.ShapeByID(conn.SourceID)
		if !ok {
			return nil, fmt.Errorf("router: connection %q: %w: %q", conn.ID, diagram.ErrUnknownEndpoint, conn.SourceID)
		}
		dst, ok := d.ShapeByID(conn.TargetID)
		if !ok {
			return nil, fmt.Errorf("router: connection %q: %w: %q", conn.ID, diagram.ErrUnknownEndpoint, conn.TargetID)
		}

		var sig routecache.Signature
		if cfg.Cache != nil {
			sig = routecache.MakeSignature(src.Box(), dst.Box(), fp)
			if rt, hit := cfg.Cache.Get(sig); hit {
				out = append(out, ConnectionRoute{ConnectionID: conn.ID, Route: rt})

				continue
			}
		}

		perConn := append(opts[:len(opts):len(opts)],
			WithExclusions(conn.SourceID, conn.TargetID))
		rt, err := Find(ctx, src.Box(), dst.Box(), idx, perConn...)
		if err != nil {
			return nil, fmt.Errorf("router: connection %q: %w", conn.ID, err)
		}

		if cfg.Cache != nil && !rt.Truncated {
			cfg.Cache.Add(sig, rt)
		}

		out = append(out, ConnectionRoute{ConnectionID: conn.ID, Route: rt})
	}

	return out, nil
}
