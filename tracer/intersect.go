package tracer

import "github.com/maidamai0/bvh/scene"

const (
	// Traversal stack capacity. 64 levels is enough for any tree the
	// builders can produce; overflowing it means the pool is malformed.
	stackDepth = 64

	// Möller-Trumbore parallelism and self-intersection cutoff.
	triEpsilon float32 = 1e-4
)

// IntersectTriangle runs the single-precision Möller-Trumbore test and
// writes the hit distance back into the ray when it beats r.T. Misses leave
// the ray untouched.
func IntersectTriangle(t *scene.Triangle, r *Ray) {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	p := r.Dir.Cross(e2)

	det := e1.Dot(p)
	if det > -triEpsilon && det < triEpsilon {
		// ray parallel to the triangle plane
		return
	}

	inv := 1 / det
	s := r.Origin.Sub(t.V0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return
	}

	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return
	}

	if dist := e2.Dot(q) * inv; dist > triEpsilon && dist < r.T {
		r.T = dist
	}
}

// TraceStats counts the work done by a single traversal.
type TraceStats struct {
	NodesVisited    int
	LeavesVisited   int
	TrianglesTested int
}

// Intersect walks the hierarchy front to back and leaves the nearest hit
// distance in r.T. Safe to call concurrently on distinct rays.
func (b *BVH) Intersect(r *Ray) {
	b.trace(r, nil)
}

// IntersectStats traces like Intersect and additionally reports the
// traversal cost.
func (b *BVH) IntersectStats(r *Ray) TraceStats {
	var st TraceStats
	b.trace(r, &st)
	return st
}

func (b *BVH) trace(r *Ray, st *TraceStats) {
	if len(b.nodes) == 0 {
		return
	}

	var stack [stackDepth]uint32
	stackPtr := 0

	node := &b.nodes[0]
	for {
		if st != nil {
			st.NodesVisited++
		}

		if node.IsLeaf() {
			if st != nil {
				st.LeavesVisited++
				st.TrianglesTested += int(node.count)
			}
			for _, triIdx := range b.indices[node.first : node.first+node.count] {
				IntersectTriangle(&b.triangles[triIdx], r)
			}
			if stackPtr == 0 {
				return
			}
			stackPtr--
			node = &b.nodes[stack[stackPtr]]
			continue
		}

		child1 := node.LeftChild()
		child2 := node.RightChild()
		dist1, hit1 := b.nodes[child1].bounds.HitDistance(r)
		dist2, hit2 := b.nodes[child2].bounds.HitDistance(r)
		if !hit1 {
			dist1 = posInf
		}
		if !hit2 {
			dist2 = posInf
		}

		// Descend into the nearer box first; the farther one waits on
		// the stack and may be pruned by a tightened r.T when popped.
		if dist1 > dist2 {
			dist1, dist2 = dist2, dist1
			child1, child2 = child2, child1
		}

		if dist1 == posInf {
			if stackPtr == 0 {
				return
			}
			stackPtr--
			node = &b.nodes[stack[stackPtr]]
			continue
		}

		node = &b.nodes[child1]
		if dist2 < posInf {
			if stackPtr == stackDepth {
				panic("tracer: traversal stack overflow")
			}
			stack[stackPtr] = child2
			stackPtr++
		}
	}
}
