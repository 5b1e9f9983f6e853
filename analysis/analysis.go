package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/gardencraft/bordergraph"
	"github.com/katalvlaran/gardencraft/enclosure"
	"github.com/katalvlaran/gardencraft/farm"
	"github.com/katalvlaran/gardencraft/loop"
)

// Analyze builds the Border graph of g and computes every pass over it in
// parallel. The passes cannot fail; the only errors are ErrNilGrid and the
// context's error.
//
// ctx is checked before and after building the graph, and again when each pass
// returns. A pass that has started is not interrupted: cancelling ctx discards
// its result but does not shorten it.
func Analyze(ctx context.Context, g *farm.Grid) (*Report, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	bg := bordergraph.Build(g)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	klog.V(2).Infof("analysis: %dx%d grid, %d border nodes, %d edges",
		g.Width(), g.Height(), bg.NodeCount(), bg.EdgeCount())

	r := &Report{
		Width:       g.Width(),
		Height:      g.Height(),
		BorderCells: bg.NodeCount(),
	}
	// Each goroutine writes a distinct field of r.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		r.ClosedLoops = loop.ClosedLoops(bg, loop.NoLimit)
		r.SingleLoop = r.ClosedLoops == 1
		return egCtx.Err()
	})
	eg.Go(func() error {
		r.Fences = len(bg.Components())
		return egCtx.Err()
	})
	eg.Go(func() error {
		r.Enclosure = enclosure.FromGraph(bg)
		return egCtx.Err()
	})
	eg.Go(func() error {
		r.Interior = enclosure.InteriorFromGraph(bg)
		return egCtx.Err()
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	klog.V(2).Infof("analysis: %s", r.Summary())

	return r, nil
}
