package scene

import "github.com/maidamai0/bvh/types"

// Triangle is the primitive partitioned and intersected by the tracer. The
// centroid is filled in once at the start of a build and the triangle is
// read-only from then on.
type Triangle struct {
	V0, V1, V2 types.Vec3
	Centroid   types.Vec3
}

// Populate the centroid from the three vertices.
func (t *Triangle) UpdateCentroid() {
	t.Centroid = t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}
