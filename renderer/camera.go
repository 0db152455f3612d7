package renderer

import (
	"github.com/maidamai0/bvh/tracer"
	"github.com/maidamai0/bvh/types"
)

// Camera is a pinhole camera described by its position and the three
// corner points spanning the image plane: p0 top-left, p1 top-right, p2
// bottom-left.
type Camera struct {
	Pos types.Vec3
	P0  types.Vec3
	P1  types.Vec3
	P2  types.Vec3
}

// Ray returns the primary ray through the image plane at (u, v), both in
// [0, 1).
func (c Camera) Ray(u, v float32) tracer.Ray {
	pixel := c.P0.
		Add(c.P1.Sub(c.P0).Mul(u)).
		Add(c.P2.Sub(c.P0).Mul(v))
	return tracer.NewRay(c.Pos, pixel.Sub(c.Pos).Normalize())
}
