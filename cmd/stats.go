package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/maidamai0/bvh/tracer"
)

// Build a BVH and print its statistics table. With --nodes each node of
// the pool is dumped in its textual debug form.
func Stats(ctx *cli.Context) error {
	setupLogging(ctx)

	triangles, _, err := loadScene(ctx)
	if err != nil {
		return err
	}

	strategy, err := strategyFromName(ctx.String("strategy"))
	if err != nil {
		return err
	}

	bvh := tracer.Build(triangles, strategy)
	fmt.Print(bvh.Stats())

	if ctx.Bool("nodes") {
		dumpNodes(bvh, 0, 0)
	}
	return nil
}

func dumpNodes(bvh *tracer.BVH, nodeIdx uint32, depth int) {
	node := bvh.Node(nodeIdx)
	fmt.Printf("%*s%d %s\n", depth*2, "", nodeIdx, node)
	if !node.IsLeaf() {
		dumpNodes(bvh, node.LeftChild(), depth+1)
		dumpNodes(bvh, node.RightChild(), depth+1)
	}
}
