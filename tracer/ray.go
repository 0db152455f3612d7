package tracer

import "github.com/maidamai0/bvh/types"

// A ray starts with its hit distance at this sentinel; it survives a trace
// only when nothing was hit.
const MaxDistance float32 = 1e30

// Ray carries the origin, a unit direction, the precomputed reciprocal
// direction used by the slab tests, and the nearest hit distance found so
// far. T is monotonically non-increasing while tracing.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
	rcpDir types.Vec3

	T float32
}

// Create a ray. The direction is expected to be normalized and non-zero;
// axis-parallel directions are fine, their reciprocal components become
// IEEE infinities which the slab test tolerates.
func NewRay(origin, dir types.Vec3) Ray {
	return Ray{
		Origin: origin,
		Dir:    dir,
		rcpDir: dir.Rcp(),
		T:      MaxDistance,
	}
}

// Hit reports whether a trace has recorded an intersection.
func (r *Ray) Hit() bool {
	return r.T < MaxDistance
}
