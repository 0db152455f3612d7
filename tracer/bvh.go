package tracer

import (
	"time"

	"github.com/maidamai0/bvh/log"
	"github.com/maidamai0/bvh/scene"
)

// A split strategy recursively partitions the node at nodeIdx, allocating
// children from the pool until its termination criterion makes a leaf.
type SplitStrategy interface {
	Split(b *BVH, nodeIdx uint32)
}

var (
	// Splits on the center of the node bounds along the longest axis.
	// Fast builds, usable trees.
	MedianMidpoint SplitStrategy = medianMidpoint{}

	// Evaluates every triangle centroid as a split candidate and keeps
	// the partition minimizing count * surface area. Slow builds, fast
	// traversal.
	SurfaceAreaHeuristic SplitStrategy = surfaceAreaHeuristic{}
)

// BVH is the acceleration structure: a flat pool of nodes addressed by
// 32-bit indices over a permutation of triangle indices. The triangle
// storage is borrowed from the caller; Build fills in the centroids and the
// slice is treated as read-only afterwards.
type BVH struct {
	triangles []scene.Triangle
	nodes     []Node
	indices   []uint32
	used      uint32

	logger log.Logger
}

// Build constructs a BVH over the triangle slice with the given strategy.
// Building with no triangles yields a BVH whose Intersect is a no-op.
func Build(triangles []scene.Triangle, strategy SplitStrategy) *BVH {
	b := &BVH{
		triangles: triangles,
		logger:    log.New("tracer"),
	}
	if len(triangles) == 0 {
		return b
	}

	start := time.Now()

	for i := range triangles {
		triangles[i].UpdateCentroid()
	}

	// 2N slots is a safe upper bound for a binary tree with at most N
	// leaves when sibling pairs are allocated two at a time.
	b.nodes = make([]Node, 2*len(triangles))
	b.indices = make([]uint32, len(triangles))
	for i := range b.indices {
		b.indices[i] = uint32(i)
	}

	// The cursor starts at 2: slot 0 is the root and slot 1 stays unused
	// so sibling pairs always share a 64-byte line.
	b.used = 2
	root := &b.nodes[0]
	root.first = 0
	root.count = uint32(len(triangles))
	b.updateBounds(0)

	strategy.Split(b, 0)

	st := b.stats()
	b.logger.Debugf("built BVH over %d triangles in %d ms: %d nodes, %d leafs, max depth %d",
		len(triangles), time.Since(start).Milliseconds(), st.nodes, st.leafs, st.maxDepth)

	return b
}

// Root returns the root node, or nil for an empty BVH.
func (b *BVH) Root() *Node {
	if len(b.nodes) == 0 {
		return nil
	}
	return &b.nodes[0]
}

// Node returns the node at a pool index. Indices come from the child
// accessors of other nodes; the root is index 0.
func (b *BVH) Node(nodeIdx uint32) *Node {
	return &b.nodes[nodeIdx]
}

// Recompute a node's bounds from the triangles its slot range names.
func (b *BVH) updateBounds(nodeIdx uint32) {
	node := &b.nodes[nodeIdx]
	node.bounds = NewAABB()
	for _, triIdx := range b.indices[node.first : node.first+node.count] {
		tri := &b.triangles[triIdx]
		node.bounds.Grow(tri.V0)
		node.bounds.Grow(tri.V1)
		node.bounds.Grow(tri.V2)
	}
}

// partition runs the Hoare two-pointer sweep over the node's slot range,
// moving triangles with centroid strictly below pos to the left. Strict
// `<` keeps coincident centroids together on the right side. Returns the
// first slot of the right half and whether both halves are non-empty.
func (b *BVH) partition(node *Node, axis int, pos float32) (uint32, bool) {
	left := int(node.first)
	right := int(node.first+node.count) - 1
	for left <= right {
		if b.triangles[b.indices[left]].Centroid[axis] < pos {
			left++
		} else {
			b.indices[left], b.indices[right] = b.indices[right], b.indices[left]
			right--
		}
	}

	leftCount := uint32(left) - node.first
	if leftCount == 0 || leftCount == node.count {
		return 0, false
	}
	return uint32(left), true
}

// allocChildren carves the next sibling pair off the pool, hands each child
// its half of the parent's slot range and turns the parent into an internal
// node. Child bounds are computed here so strategies can score them
// immediately.
func (b *BVH) allocChildren(nodeIdx, splitSlot uint32) (uint32, uint32) {
	left := b.used
	right := b.used + 1
	b.used += 2

	node := &b.nodes[nodeIdx]
	b.nodes[left] = Node{first: node.first, count: splitSlot - node.first}
	b.nodes[right] = Node{first: splitSlot, count: node.count - (splitSlot - node.first)}
	node.first = left
	node.count = 0

	b.updateBounds(left)
	b.updateBounds(right)
	return left, right
}
