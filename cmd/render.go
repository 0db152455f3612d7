package cmd

import (
	"image/png"
	"os"

	"github.com/urfave/cli"

	"github.com/maidamai0/bvh/renderer"
	"github.com/maidamai0/bvh/tracer"
)

// Render a frame through the BVH and write it out as a png.
func Render(ctx *cli.Context) error {
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
	img, stats, err := renderer.Render(bvh, cam, opts)
	if err != nil {
		return err
	}
	logger.Noticef("traced %d rays (%d hits) in %s", stats.Rays, stats.Hits, stats.RenderTime)

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)
	return nil
}
