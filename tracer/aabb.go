package tracer

import (
	"math"

	"github.com/maidamai0/bvh/types"
)

var posInf = float32(math.Inf(1))

// Axis-aligned bounding box. After any Grow, Min <= Max componentwise.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// NewAABB returns the empty box: growing it around a single point yields a
// valid degenerate box at that point.
func NewAABB() AABB {
	return AABB{
		Min: types.Vec3{posInf, posInf, posInf},
		Max: types.Vec3{-posInf, -posInf, -posInf},
	}
}

// Extend the box to contain p.
func (b *AABB) Grow(p types.Vec3) {
	b.Min = types.MinVec3(b.Min, p)
	b.Max = types.MaxVec3(b.Max, p)
}

// Extend the box to contain another box.
func (b *AABB) GrowAABB(other AABB) {
	b.Grow(other.Min)
	b.Grow(other.Max)
}

// Area returns the half-surface-area proxy dx*dy + dy*dz + dz*dx. The SAH
// only compares candidates against each other so the constant factor of 2
// is elided.
func (b *AABB) Area() float32 {
	d := b.Max.Sub(b.Min)
	return d[0]*d[1] + d[1]*d[2] + d[2]*d[0]
}

// Center of the box along one axis.
func (b *AABB) Center(axis int) float32 {
	return (b.Min[axis] + b.Max[axis]) * 0.5
}

// Extent returns Max - Min.
func (b *AABB) Extent() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether other fits inside b componentwise.
func (b *AABB) Contains(other AABB) bool {
	for i := 0; i < 3; i++ {
		if other.Min[i] < b.Min[i] || other.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Intersects is the boolean slab test.
func (b *AABB) Intersects(r *Ray) bool {
	_, hit := b.HitDistance(r)
	return hit
}

// HitDistance is the distance form of the slab test: the entry distance and
// true on a hit, false on a miss. A hit additionally requires the entry
// distance to beat the ray's current nearest hit.
func (b *AABB) HitDistance(r *Ray) (float32, bool) {
	t1 := (b.Min[0] - r.Origin[0]) * r.rcpDir[0]
	t2 := (b.Max[0] - r.Origin[0]) * r.rcpDir[0]
	tmin := min32(t1, t2)
	tmax := max32(t1, t2)

	t1 = (b.Min[1] - r.Origin[1]) * r.rcpDir[1]
	t2 = (b.Max[1] - r.Origin[1]) * r.rcpDir[1]
	tmin = max32(tmin, min32(t1, t2))
	tmax = min32(tmax, max32(t1, t2))

	t1 = (b.Min[2] - r.Origin[2]) * r.rcpDir[2]
	t2 = (b.Max[2] - r.Origin[2]) * r.rcpDir[2]
	tmin = max32(tmin, min32(t1, t2))
	tmax = min32(tmax, max32(t1, t2))

	if tmax >= tmin && tmin < r.T && tmax > 0 {
		return tmin, true
	}
	return 0, false
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
