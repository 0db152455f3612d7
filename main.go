package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/maidamai0/bvh/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "model, m",
			Usage: "path to a whitespace-separated .tri triangle model",
		},
		cli.IntFlag{
			Name:  "random, n",
			Value: 64,
			Usage: "number of random triangles to generate when no model is given",
		},
		cli.UintFlag{
			Name:  "seed",
			Value: 0x12345678,
			Usage: "seed for the random triangle generator",
		},
		cli.StringFlag{
			Name:  "strategy, s",
			Value: "sah",
			Usage: "split strategy: midpoint or sah",
		},
	}

	frameFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1024,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 512,
			Usage: "frame height",
		},
	}

	app := cli.NewApp()
	app.Name = "bvh"
	app.Usage = "build and trace BVH acceleration structures over triangle meshes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a depth-shaded frame of the scene",
			Description: `
Build a BVH over the selected scene, trace one primary ray per pixel and
write the depth-shaded result to a png file.`,
			Flags: append(append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, sceneFlags...), frameFlags...),
			Action: cmd.Render,
		},
		{
			Name:  "stats",
			Usage: "print statistics for the built hierarchy",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "nodes",
					Usage: "also dump every node of the pool",
				},
			}, sceneFlags...),
			Action: cmd.Stats,
		},
		{
			Name:   "bench",
			Usage:  "compare BVH tracing against the brute-force reference",
			Flags:  append(sceneFlags, frameFlags...),
			Action: cmd.Bench,
		},
	}

	app.Run(os.Args)
}
