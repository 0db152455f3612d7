package tracer

type medianMidpoint struct{}

func (s medianMidpoint) Split(b *BVH, nodeIdx uint32) {
	node := &b.nodes[nodeIdx]
	if node.count <= 2 {
		return
	}

	axis := node.bounds.Extent().MaxAxis()
	pos := node.bounds.Center(axis)

	// A flat or clustered node may refuse to partition; it stays a leaf.
	splitSlot, ok := b.partition(node, axis, pos)
	if !ok {
		return
	}

	left, right := b.allocChildren(nodeIdx, splitSlot)
	s.Split(b, left)
	s.Split(b, right)
}
