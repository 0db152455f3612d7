package tracer

import (
	"testing"

	"github.com/maidamai0/bvh/types"
)

func TestGrow(t *testing.T) {
	box := NewAABB()
	box.Grow(types.XYZ(1, 2, 3))

	// A single point yields a valid degenerate box.
	if box.Min != box.Max || box.Min != types.XYZ(1, 2, 3) {
		t.Fatalf("expected degenerate box at (1,2,3); got %v %v", box.Min, box.Max)
	}

	box.Grow(types.XYZ(-1, 4, 0))
	if box.Min != types.XYZ(-1, 2, 0) || box.Max != types.XYZ(1, 4, 3) {
		t.Fatalf("unexpected bounds after grow: %v %v", box.Min, box.Max)
	}

	other := NewAABB()
	other.Grow(types.XYZ(5, 5, 5))
	box.GrowAABB(other)
	if box.Max != types.XYZ(5, 5, 5) {
		t.Fatalf("expected max (5,5,5) after growing around box; got %v", box.Max)
	}
}

func TestArea(t *testing.T) {
	box := NewAABB()
	box.Grow(types.XYZ(0, 0, 0))
	box.Grow(types.XYZ(1, 2, 3))

	// dx*dy + dy*dz + dz*dx = 2 + 6 + 3
	if got := box.Area(); got != 11 {
		t.Fatalf("expected area 11; got %f", got)
	}
}

func TestCenterExtent(t *testing.T) {
	box := AABB{Min: types.XYZ(-1, 0, 2), Max: types.XYZ(3, 4, 6)}
	if got := box.Center(0); got != 1 {
		t.Fatalf("expected center 1 on axis 0; got %f", got)
	}
	if got := box.Extent(); got != types.XYZ(4, 4, 4) {
		t.Fatalf("expected extent (4,4,4); got %v", got)
	}
}

func TestContains(t *testing.T) {
	outer := AABB{Min: types.XYZ(0, 0, 0), Max: types.XYZ(4, 4, 4)}
	inner := AABB{Min: types.XYZ(1, 1, 1), Max: types.XYZ(2, 2, 2)}
	if !outer.Contains(inner) {
		t.Fatal("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Fatal("expected inner not to contain outer")
	}
	if !outer.Contains(outer) {
		t.Fatal("expected a box to contain itself")
	}
}

func TestHitDistance(t *testing.T) {
	box := AABB{Min: types.XYZ(-1, -1, -1), Max: types.XYZ(1, 1, 1)}

	r := NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1))
	dist, hit := box.HitDistance(&r)
	if !hit || dist != 4 {
		t.Fatalf("expected hit at distance 4; got %f (hit %v)", dist, hit)
	}
	if !box.Intersects(&r) {
		t.Fatal("expected boolean slab test to agree with the distance form")
	}

	// box behind the ray
	r = NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, -1))
	if _, hit = box.HitDistance(&r); hit {
		t.Fatal("expected box behind the origin to miss")
	}

	// a nearer recorded hit prunes the box
	r = NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1))
	r.T = 2
	if _, hit = box.HitDistance(&r); hit {
		t.Fatal("expected box beyond the recorded hit to be pruned")
	}
}

func TestHitDistanceAxisParallel(t *testing.T) {
	box := AABB{Min: types.XYZ(-1, -1, -1), Max: types.XYZ(1, 1, 1)}

	// Axis-parallel direction: two reciprocal components are infinite.
	r := NewRay(types.XYZ(0.5, 0.5, -5), types.XYZ(0, 0, 1))
	dist, hit := box.HitDistance(&r)
	if !hit || dist != 4 {
		t.Fatalf("expected axis-parallel hit at distance 4; got %f (hit %v)", dist, hit)
	}

	// Same direction but origin outside the x slab.
	r = NewRay(types.XYZ(2, 0.5, -5), types.XYZ(0, 0, 1))
	if _, hit = box.HitDistance(&r); hit {
		t.Fatal("expected axis-parallel ray outside the slab to miss")
	}
}

func TestRayOriginInsideBox(t *testing.T) {
	box := AABB{Min: types.XYZ(-1, -1, -1), Max: types.XYZ(1, 1, 1)}
	r := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	if _, hit := box.HitDistance(&r); !hit {
		t.Fatal("expected ray starting inside the box to hit")
	}
}
