package tracer

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

type treeStats struct {
	nodes    int
	leafs    int
	maxDepth int
	leafTris int

	// Sum of count * area over leafs, and the corresponding cost of the
	// unsplit root. The SAH guarantees leafCost < rootCost whenever it
	// splits at all.
	leafCost float32
	rootCost float32
}

func (b *BVH) stats() treeStats {
	var st treeStats
	if len(b.nodes) == 0 {
		return st
	}

	root := &b.nodes[0]
	st.rootCost = float32(len(b.indices)) * root.bounds.Area()

	var visit func(nodeIdx uint32, depth int)
	visit = func(nodeIdx uint32, depth int) {
		node := &b.nodes[nodeIdx]
		st.nodes++
		if depth > st.maxDepth {
			st.maxDepth = depth
		}
		if node.IsLeaf() {
			st.leafs++
			st.leafTris += int(node.count)
			st.leafCost += float32(node.count) * node.bounds.Area()
			return
		}
		visit(node.LeftChild(), depth+1)
		visit(node.RightChild(), depth+1)
	}
	visit(0, 0)

	return st
}

// Build a tabular representation of tree statistics.
func (b *BVH) Stats() string {
	st := b.stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", len(b.triangles))})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", st.nodes)})
	table.Append([]string{"Pool slots used", fmt.Sprintf("%d / %d", b.used, len(b.nodes))})
	table.Append([]string{"Leafs", fmt.Sprintf("%d", st.leafs)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", st.maxDepth)})
	if st.leafs > 0 {
		table.Append([]string{"Avg leaf size", fmt.Sprintf("%.2f", float64(st.leafTris)/float64(st.leafs))})
	}
	table.Append([]string{"Leaf SAH cost", fmt.Sprintf("%.1f", st.leafCost)})
	table.Append([]string{"Root SAH cost", fmt.Sprintf("%.1f", st.rootCost)})
	table.Append([]string{"Memory", fmtSize(len(b.nodes)*32 + len(b.indices)*4)})
	table.Render()
	return buf.String()
}

// Format a byte count with the appropriate unit.
func fmtSize(n int) string {
	size := float64(n)
	for _, unit := range []string{"bytes", "kb", "mb"} {
		if size < 1024 || unit == "mb" {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return ""
}
