package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/maidamai0/bvh/renderer"
	"github.com/maidamai0/bvh/tracer"
)

// Render the same frame through the BVH and through a brute-force scan and
// compare the results. The hit counts must match exactly; the timings and
// traversal costs show what the hierarchy buys.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	triangles, cam, err := loadScene(ctx)
	if err != nil {
		return err
	}

	strategy, err := strategyFromName(ctx.String("strategy"))
	if err != nil {
		return err
	}

	bvh := tracer.Build(triangles, strategy)

	opts := renderer.Options{
		FrameW: ctx.Int("width"),
		FrameH: ctx.Int("height"),
	}

	_, bvhStats, err := renderer.Render(bvh, cam, opts)
	if err != nil {
		return err
	}
	_, bruteStats, err := renderer.Render(renderer.BruteForce(triangles), cam, opts)
	if err != nil {
		return err
	}

	if bvhStats.Hits != bruteStats.Hits {
		return fmt.Errorf("hit count mismatch: bvh %d, brute force %d", bvhStats.Hits, bruteStats.Hits)
	}

	logger.Noticef("bvh:         %d hits in %s", bvhStats.Hits, bvhStats.RenderTime)
	logger.Noticef("brute force: %d hits in %s", bruteStats.Hits, bruteStats.RenderTime)
	logger.Noticef("speedup:     %.1fx", float64(bruteStats.RenderTime)/float64(bvhStats.RenderTime))

	// Traversal cost on a subsampled pixel grid: node visits plus
	// triangle tests, against N triangle tests per brute-force ray.
	var traced, cost int
	for y := 0; y < opts.FrameH; y += 8 {
		for x := 0; x < opts.FrameW; x += 8 {
			r := cam.Ray(float32(x)/float32(opts.FrameW), float32(y)/float32(opts.FrameH))
			st := bvh.IntersectStats(&r)
			cost += st.NodesVisited + st.TrianglesTested
			traced++
		}
	}
	logger.Noticef("avg traversal cost: %.1f (brute force %d)", float64(cost)/float64(traced), len(triangles))

	return nil
}
