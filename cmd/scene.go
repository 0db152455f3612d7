package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/maidamai0/bvh/renderer"
	"github.com/maidamai0/bvh/scene"
	"github.com/maidamai0/bvh/tracer"
	"github.com/maidamai0/bvh/types"
)

// Default viewpoints for the two scene kinds: the procedural scene sits in
// a [-5, 5] cube viewed from -z, models use the unity vehicle framing.
var (
	randomSceneCamera = renderer.Camera{
		Pos: types.XYZ(0, 0, -18),
		P0:  types.XYZ(-1, 1, -15),
		P1:  types.XYZ(1, 1, -15),
		P2:  types.XYZ(-1, -1, -15),
	}

	modelCamera = renderer.Camera{
		Pos: types.XYZ(-1.5, -0.2, -2.5),
		P0:  types.XYZ(-2.5, 0.8, -0.5),
		P1:  types.XYZ(-0.5, 0.8, -0.5),
		P2:  types.XYZ(-2.5, -1.2, -0.5),
	}
)

// Assemble the scene selected by the command flags: a .tri model when
// --model is given, a procedurally generated one otherwise.
func loadScene(ctx *cli.Context) ([]scene.Triangle, renderer.Camera, error) {
	if path := ctx.String("model"); path != "" {
		triangles, err := scene.Load(path)
		return triangles, modelCamera, err
	}

	count := ctx.Int("random")
	seed := uint32(ctx.Uint("seed"))
	logger.Infof("generating %d random triangles (seed %#x)", count, seed)
	return scene.Generate(count, seed), randomSceneCamera, nil
}

func strategyFromName(name string) (tracer.SplitStrategy, error) {
	switch name {
	case "midpoint":
		return tracer.MedianMidpoint, nil
	case "sah":
		return tracer.SurfaceAreaHeuristic, nil
	}
	return nil, fmt.Errorf("unknown split strategy %q (expected midpoint or sah)", name)
}
